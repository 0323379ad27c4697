// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/erikkallen/dataconf/node"
)

// FromMap converts a plain in-memory mapping into a tree, so programmatic
// overrides can participate in merging like any file source. Map iteration
// order is undefined in Go, so keys are sorted for a deterministic tree.
func FromMap(m map[string]any) (node.Node, error) {
	return goMap(m)
}

func goMap(m map[string]any) (node.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := node.NewMapping()
	for _, k := range keys {
		v, err := goValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out.Set(k, v)
	}
	return out, nil
}

func uintNode(u uint64) (node.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("unsigned value %d overflows int64", u)
	}
	return node.Int(u), nil
}

// goValue converts an arbitrary Go value into a tree node. It covers the
// shapes produced by parsers that hand back native Go values (the TOML
// loader, FromMap callers) and falls back to reflection for typed slices
// and string-keyed maps.
func goValue(v any) (node.Node, error) {
	switch t := v.(type) {
	case nil:
		return node.Null{}, nil
	case node.Node:
		return t, nil
	case bool:
		return node.Bool(t), nil
	case string:
		return node.String(t), nil
	case int:
		return node.Int(t), nil
	case int8:
		return node.Int(t), nil
	case int16:
		return node.Int(t), nil
	case int32:
		return node.Int(t), nil
	case int64:
		return node.Int(t), nil
	case uint:
		return uintNode(uint64(t))
	case uint8:
		return node.Int(t), nil
	case uint16:
		return node.Int(t), nil
	case uint32:
		return node.Int(t), nil
	case uint64:
		return uintNode(t)
	case float32:
		return node.Float(t), nil
	case float64:
		return node.Float(t), nil
	case time.Duration:
		return node.String(t.String()), nil
	case time.Time:
		return node.String(t.Format(time.RFC3339)), nil
	case map[string]any:
		return goMap(t)
	case []any:
		seq := make(node.Sequence, len(t))
		for i, el := range t {
			n, err := goValue(el)
			if err != nil {
				return nil, err
			}
			seq[i] = n
		}
		return seq, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make(node.Sequence, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := goValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			seq[i] = n
		}
		return seq, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return goMap(m)
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}
