// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/erikkallen/dataconf/node"
)

// DefaultTimeLayouts are the textual timestamp formats accepted for
// time.Time targets unless overridden with [TimeLayouts].
var DefaultTimeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Options control a single decode call.
type Options struct {
	strict      bool
	timeLayouts []string
}

// Option mutates decode Options.
type Option func(*Options)

// Strict makes mapping keys that match no declared struct field fail the
// decode with an [UnknownFieldError]. By default unknown keys are ignored,
// keeping schemas forward-compatible with newer configuration files.
func Strict() Option {
	return func(o *Options) { o.strict = true }
}

// TimeLayouts replaces the accepted time.Time formats for this decode call.
func TimeLayouts(layouts ...string) Option {
	return func(o *Options) { o.timeLayouts = layouts }
}

// Decode maps tree onto out, which must be a non-nil pointer to the target
// value. On success out is fully populated; on failure out is untouched and
// the returned error carries the field path of the mismatch.
func Decode(tree node.Node, out any, opts ...Option) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("decode: out must be a non-nil pointer")
	}

	d, err := descriptorOf(rv.Type().Elem())
	if err != nil {
		return err
	}

	dec := &decoder{opts: Options{timeLayouts: DefaultTimeLayouts}}
	for _, opt := range opts {
		opt(&dec.opts)
	}

	v, err := dec.decode(tree, d, nil)
	if err != nil {
		return err
	}
	rv.Elem().Set(v)
	return nil
}

type decoder struct {
	opts Options
}

func (dec *decoder) decode(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	if isNull(n) && d.kind != kindOptional && d.kind != kindAny {
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: d.typ.String(), Got: node.Null{}}
	}

	switch d.kind {
	case kindBool, kindInt, kindUint, kindFloat, kindString, kindDuration, kindTime:
		return dec.decodeScalar(n, d, p)
	case kindText:
		return dec.decodeText(n, d, p)
	case kindAny:
		return dec.decodeAny(n, d)
	case kindOptional:
		return dec.decodeOptional(n, d, p)
	case kindSequence:
		return dec.decodeSequence(n, d, p)
	case kindMapping:
		return dec.decodeMapping(n, d, p)
	case kindEnum:
		return dec.decodeEnum(n, d, p)
	case kindUnion:
		return dec.decodeUnion(n, d, p)
	case kindStruct:
		return dec.decodeStruct(n, d, p)
	default:
		return reflect.Value{}, fmt.Errorf("decode: unsupported descriptor for %s at %s", d.typ, p)
	}
}

// decodeScalar applies the coercion rules of coerce.go and stores the result
// in a fresh value of the target type, so named primitive types decode too.
func (dec *decoder) decodeScalar(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	out := reflect.New(d.typ).Elem()

	switch d.kind {
	case kindBool:
		v, err := asBool(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		out.SetBool(v)
	case kindInt:
		v, err := asInt(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		if out.OverflowInt(v) {
			return reflect.Value{}, &TypeMismatchError{Path: p, Expected: d.typ.String(), Got: n}
		}
		out.SetInt(v)
	case kindUint:
		v, err := asInt(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		if v < 0 || out.OverflowUint(uint64(v)) {
			return reflect.Value{}, &TypeMismatchError{Path: p, Expected: d.typ.String(), Got: n}
		}
		out.SetUint(uint64(v))
	case kindFloat:
		v, err := asFloat(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		out.SetFloat(v)
	case kindString:
		v, err := asString(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		out.SetString(v)
	case kindDuration:
		v, err := asDuration(n)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		out.Set(reflect.ValueOf(v))
	case kindTime:
		v, err := asTime(n, dec.opts.timeLayouts)
		if err != nil {
			return reflect.Value{}, dec.mismatch(err, n, p)
		}
		out.Set(reflect.ValueOf(v))
	}
	return out, nil
}

func (dec *decoder) decodeText(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	s, err := asString(n)
	if err != nil {
		return reflect.Value{}, dec.mismatch(err, n, p)
	}
	out := reflect.New(d.typ)
	if err := out.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: d.typ.String(), Got: n}
	}
	return out.Elem(), nil
}

func (dec *decoder) decodeAny(n node.Node, d *descriptor) (reflect.Value, error) {
	v := node.Interface(n)
	if v == nil {
		return reflect.Zero(d.typ), nil
	}
	return reflect.ValueOf(v), nil
}

func (dec *decoder) decodeOptional(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	if isNull(n) {
		return reflect.Zero(d.typ), nil
	}
	ev, err := dec.decode(n, d.elem, p)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(d.elem.typ)
	out.Elem().Set(ev)
	return out, nil
}

func (dec *decoder) decodeSequence(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	seq, ok := n.(node.Sequence)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: "sequence", Got: n}
	}
	out := reflect.MakeSlice(d.typ, len(seq), len(seq))
	for i, el := range seq {
		ev, err := dec.decode(el, d.elem, p.Elem(i))
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(ev)
	}
	return out, nil
}

func (dec *decoder) decodeMapping(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	m, ok := n.(*node.Mapping)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: "mapping", Got: n}
	}
	out := reflect.MakeMapWithSize(d.typ, m.Len())
	for _, k := range m.Keys() {
		child, _ := m.Get(k)
		ev, err := dec.decode(child, d.elem, p.Child(k))
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(d.typ.Key()), ev)
	}
	return out, nil
}

func (dec *decoder) decodeEnum(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	switch v := n.(type) {
	case node.String:
		if rv, ok := d.enum.byLabel[string(v)]; ok {
			return rv.Convert(d.typ), nil
		}
		return reflect.Value{}, &UnknownEnumError{Path: p, Value: string(v), Labels: d.enum.labels}
	case node.Int:
		if d.enum.byValue != nil {
			if rv, ok := d.enum.byValue[int64(v)]; ok {
				return rv.Convert(d.typ), nil
			}
		}
		return reflect.Value{}, &UnknownEnumError{Path: p, Value: strconv.FormatInt(int64(v), 10), Labels: d.enum.labels}
	default:
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: "enum " + d.typ.String(), Got: n}
	}
}

// decodeUnion resolves a sum type. A mapping with a "_type" key naming a
// variant decodes as that variant directly; otherwise variants are attempted
// in registration order and the first success wins. Total failure returns a
// UnionError carrying every attempted variant's error.
func (dec *decoder) decodeUnion(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	if m, ok := n.(*node.Mapping); ok {
		if tn, ok := m.Get("_type"); ok {
			name, err := asString(tn)
			if err != nil {
				return reflect.Value{}, dec.mismatch(err, tn, p.Child("_type"))
			}
			for _, v := range d.variants {
				if v.name == name {
					return dec.decodeVariant(n, d, v, p)
				}
			}
			return reflect.Value{}, &UnionError{
				Path: p,
				Type: d.typ.String(),
				Causes: []error{
					fmt.Errorf("no variant named %q declared for %s", name, d.typ),
				},
			}
		}
	}

	causes := make([]error, 0, len(d.variants))
	for _, v := range d.variants {
		out, err := dec.decodeVariant(n, d, v, p)
		if err == nil {
			return out, nil
		}
		causes = append(causes, fmt.Errorf("%s: %w", v.name, err))
	}
	return reflect.Value{}, &UnionError{Path: p, Type: d.typ.String(), Causes: causes}
}

func (dec *decoder) decodeVariant(n node.Node, d *descriptor, v variantDesc, p Path) (reflect.Value, error) {
	vv, err := dec.decode(n, v.desc, p)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(d.typ).Elem()
	out.Set(vv)
	return out, nil
}

func (dec *decoder) decodeStruct(n node.Node, d *descriptor, p Path) (reflect.Value, error) {
	m, ok := n.(*node.Mapping)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: p, Expected: "mapping", Got: n}
	}

	out := reflect.New(d.typ).Elem()
	consumed := make(map[string]bool, m.Len())

	for _, f := range d.fields {
		child, key, found := lookupField(m, f)
		if found {
			consumed[key] = true
			fv, err := dec.decode(child, f.desc, p.Child(key))
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(f.index).Set(fv)
			continue
		}

		if f.hasDefault {
			fv, err := dec.decode(node.String(f.defValue), f.desc, p.Child(f.name))
			if err != nil {
				return reflect.Value{}, fmt.Errorf("invalid default for field %q: %w", f.name, err)
			}
			out.Field(f.index).Set(fv)
			continue
		}

		if f.desc.kind == kindOptional {
			// Absence of an optional field is not an error.
			continue
		}

		return reflect.Value{}, &MissingFieldError{Path: p.Child(f.name), Field: f.name}
	}

	if dec.opts.strict {
		var unknown []string
		for _, k := range m.Keys() {
			if !consumed[k] && k != "_type" {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			return reflect.Value{}, &UnknownFieldError{Path: p, Keys: unknown}
		}
	}
	return out, nil
}

func lookupField(m *node.Mapping, f fieldDesc) (node.Node, string, bool) {
	if v, ok := m.Get(f.name); ok {
		return v, f.name, true
	}
	for _, alias := range f.aliases {
		if v, ok := m.Get(alias); ok {
			return v, alias, true
		}
	}
	return nil, "", false
}

// mismatch attaches a path to a bare coercion error.
func (dec *decoder) mismatch(err error, n node.Node, p Path) error {
	if ce, ok := err.(*coerceError); ok {
		return &TypeMismatchError{Path: p, Expected: ce.expected, Got: n}
	}
	return &TypeMismatchError{Path: p, Expected: "scalar", Got: n}
}

func isNull(n node.Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(node.Null)
	return ok
}
