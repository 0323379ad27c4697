// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"sort"
	"strings"
	"time"

	"github.com/gurkankaymak/hocon"

	"github.com/erikkallen/dataconf/node"
)

// HOCON parses Human-Optimized Config Object Notation, the primary
// configuration syntax. Substitutions, includes and value concatenation are
// resolved by the underlying parser; this loader only maps the parsed value
// graph onto the generic tree.
type HOCON struct{}

func (HOCON) Format() Format { return FormatHOCON }

func (HOCON) Load(data []byte) (node.Node, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return node.NewMapping(), nil
	}

	cfg, err := hocon.ParseString(text)
	if err != nil {
		return nil, &Error{Format: FormatHOCON, Err: err}
	}
	return hoconToNode(cfg.GetRoot()), nil
}

func hoconToNode(v hocon.Value) node.Node {
	switch hv := v.(type) {
	case nil:
		return node.Null{}
	case hocon.Object:
		// hocon.Object is a plain map; sort keys so repeated loads of the
		// same document build identical trees.
		keys := make([]string, 0, len(hv))
		for k := range hv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := node.NewMapping()
		for _, k := range keys {
			m.Set(k, hoconToNode(hv[k]))
		}
		return m
	case hocon.Array:
		seq := make(node.Sequence, len(hv))
		for i, el := range hv {
			seq[i] = hoconToNode(el)
		}
		return seq
	case hocon.Boolean:
		return node.Bool(hv)
	case hocon.Int:
		return node.Int(hv)
	case hocon.Float32:
		return node.Float(hv)
	case hocon.Float64:
		return node.Float(hv)
	case hocon.Duration:
		// Durations surface as strings so decode's duration rules apply
		// uniformly to every source format.
		return node.String(time.Duration(hv).String())
	case hocon.String:
		return node.String(hv)
	default:
		if v.Type() == hocon.NullType {
			return node.Null{}
		}
		return node.String(v.String())
	}
}
