// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"
)

// kind enumerates the target shapes the decoder dispatches on, derived from
// the reflect.Type once and reused for every decode of that type.
type kind int

const (
	kindInvalid kind = iota
	kindBool
	kindInt
	kindUint
	kindFloat
	kindString
	kindDuration
	kindTime
	kindText
	kindAny
	kindOptional
	kindSequence
	kindMapping
	kindEnum
	kindUnion
	kindStruct
)

// descriptor is the reflective description of one target type. Descriptors
// are read-only after construction and shared across decode calls.
type descriptor struct {
	kind kind
	typ  reflect.Type

	// elem is the element descriptor for optionals, sequences and mappings.
	elem *descriptor
	// fields are the declared fields of a struct target, in order.
	fields []fieldDesc
	// variants are the registered variants of a union target, in
	// registration order.
	variants []variantDesc
	// enum is the registered label set of an enumeration target.
	enum *enumSet
}

type fieldDesc struct {
	// name is the primary mapping key for the field.
	name string
	// aliases are additional accepted keys, tried after name.
	aliases []string
	index   int
	desc    *descriptor
	// defValue is the literal from the `default` tag, decoded through the
	// same coercion rules as a source value when the key is absent.
	hasDefault bool
	defValue   string
}

type variantDesc struct {
	name string
	desc *descriptor
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// descCache holds fully built descriptors keyed by reflect.Type.
var descCache sync.Map

// descriptorOf returns the cached descriptor for t, building it on first
// use. Self-referential types (through pointers, slices or maps — Go forbids
// direct self-containment) terminate because the in-progress descriptor is
// visible to the recursion.
func descriptorOf(t reflect.Type) (*descriptor, error) {
	if d, ok := descCache.Load(t); ok {
		return d.(*descriptor), nil
	}
	b := &descBuilder{building: make(map[reflect.Type]*descriptor)}
	d, err := b.build(t)
	if err != nil {
		return nil, err
	}
	for bt, bd := range b.building {
		descCache.Store(bt, bd)
	}
	return d, nil
}

type descBuilder struct {
	building map[reflect.Type]*descriptor
}

func (b *descBuilder) build(t reflect.Type) (*descriptor, error) {
	if cached, ok := descCache.Load(t); ok {
		return cached.(*descriptor), nil
	}
	if inProgress, ok := b.building[t]; ok {
		return inProgress, nil
	}

	d := &descriptor{typ: t}
	b.building[t] = d

	if err := b.populate(d, t); err != nil {
		delete(b.building, t)
		return nil, err
	}
	return d, nil
}

func (b *descBuilder) populate(d *descriptor, t reflect.Type) error {
	// Registered enumerations take precedence over the underlying kind.
	if set, ok := enumOf(t); ok {
		d.kind = kindEnum
		d.enum = set
		return nil
	}

	switch {
	case t == durationType:
		d.kind = kindDuration
		return nil
	case t == timeType:
		d.kind = kindTime
		return nil
	case t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textUnmarshalerType):
		d.kind = kindText
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		d.kind = kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d.kind = kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		d.kind = kindUint
	case reflect.Float32, reflect.Float64:
		d.kind = kindFloat
	case reflect.String:
		d.kind = kindString
	case reflect.Pointer:
		elem, err := b.build(t.Elem())
		if err != nil {
			return err
		}
		d.kind = kindOptional
		d.elem = elem
	case reflect.Slice:
		elem, err := b.build(t.Elem())
		if err != nil {
			return err
		}
		d.kind = kindSequence
		d.elem = elem
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("decode: unsupported map key type %s, only string keys are decodable", t.Key())
		}
		elem, err := b.build(t.Elem())
		if err != nil {
			return err
		}
		d.kind = kindMapping
		d.elem = elem
	case reflect.Interface:
		if t.NumMethod() == 0 {
			d.kind = kindAny
			return nil
		}
		return b.populateUnion(d, t)
	case reflect.Struct:
		return b.populateStruct(d, t)
	default:
		return fmt.Errorf("decode: unsupported target type %s", t)
	}
	return nil
}

func (b *descBuilder) populateUnion(d *descriptor, t reflect.Type) error {
	types, ok := unionVariants(t)
	if !ok || len(types) == 0 {
		return fmt.Errorf("decode: interface type %s has no registered variants, call RegisterUnion first", t)
	}
	d.kind = kindUnion
	for _, vt := range types {
		vd, err := b.build(vt)
		if err != nil {
			return err
		}
		d.variants = append(d.variants, variantDesc{name: vt.Name(), desc: vd})
	}
	return nil
}

func (b *descBuilder) populateStruct(d *descriptor, t reflect.Type) error {
	d.kind = kindStruct
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("conf")
		if tag == "-" {
			continue
		}

		f := fieldDesc{index: i}
		if tag != "" {
			f.name = tag
			f.aliases = []string{sf.Name}
		} else {
			f.name = snakeCase(sf.Name)
			if sf.Name != f.name {
				f.aliases = []string{sf.Name}
			}
		}

		if def, ok := sf.Tag.Lookup("default"); ok {
			f.hasDefault = true
			f.defValue = def
		}

		fd, err := b.build(sf.Type)
		if err != nil {
			return fmt.Errorf("field %s of %s: %w", sf.Name, t, err)
		}
		f.desc = fd
		d.fields = append(d.fields, f)
	}
	return nil
}

// snakeCase converts a Go field name to its default mapping key:
// "Host" -> "host", "HTTPAddress" -> "http_address", "DataRoot" -> "data_root".
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
