// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// registry holds the caller-declared schema metadata that reflection alone
// cannot recover: which concrete types implement a union interface, and
// which labels an enumeration accepts. Registration must happen before the
// first Decode of a schema referencing the type, since descriptors are
// cached.
var registry = struct {
	mu     sync.RWMutex
	unions map[reflect.Type][]reflect.Type
	enums  map[reflect.Type]*enumSet
}{
	unions: make(map[reflect.Type][]reflect.Type),
	enums:  make(map[reflect.Type]*enumSet),
}

type enumSet struct {
	labels  []string
	byLabel map[string]reflect.Value
	byValue map[int64]reflect.Value
}

// RegisterUnion declares the concrete variants of the interface type I.
// During decoding, a value targeted at I is tried against each variant in
// the given order and the first success wins; a mapping carrying a "_type"
// key naming a variant's Go type selects that variant directly.
//
// Variants are passed as values of their concrete types and are typically
// structs. Calling RegisterUnion again for the same interface appends
// further variants. It panics if I is not an interface type.
func RegisterUnion[I any](variants ...I) {
	it := reflect.TypeOf((*I)(nil)).Elem()
	if it.Kind() != reflect.Interface {
		panic(fmt.Sprintf("decode: RegisterUnion type parameter %s is not an interface", it))
	}

	types := make([]reflect.Type, 0, len(variants))
	for _, v := range variants {
		vt := reflect.TypeOf(v)
		if vt == nil {
			panic("decode: RegisterUnion variant is nil")
		}
		types = append(types, vt)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.unions[it] = append(registry.unions[it], types...)
}

// RegisterEnum declares the accepted labels of the enumeration type E and
// the value each label decodes to. Label matching is case-sensitive. When E
// has an integer underlying type, an integer scalar matching a registered
// value also decodes (so both `color = RED` and `color = 1` work).
func RegisterEnum[E any](labels map[string]E) {
	et := reflect.TypeOf((*E)(nil)).Elem()

	set := &enumSet{
		byLabel: make(map[string]reflect.Value, len(labels)),
	}
	numeric := isIntKind(et.Kind())
	if numeric {
		set.byValue = make(map[int64]reflect.Value, len(labels))
	}
	for label, value := range labels {
		rv := reflect.ValueOf(value)
		set.labels = append(set.labels, label)
		set.byLabel[label] = rv
		if numeric {
			set.byValue[rv.Int()] = rv
		}
	}
	sort.Strings(set.labels)

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.enums[et] = set
}

func unionVariants(t reflect.Type) ([]reflect.Type, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	v, ok := registry.unions[t]
	return v, ok
}

func enumOf(t reflect.Type) (*enumSet, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	e, ok := registry.enums[t]
	return e, ok
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
