// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package node defines the format-agnostic configuration tree that every
// loader produces and the decoder consumes, together with the multi-source
// merge algorithm.
//
// A tree is a [Node]: either a scalar ([Null], [Bool], [Int], [Float],
// [String]), an ordered [Sequence], or an ordered [*Mapping]. Loaders build
// trees, [Merge] folds rank-tagged trees into one, and package decode maps
// the result onto caller-declared Go types. Trees are treated as immutable
// once a loader has returned them; Merge never modifies its inputs.
package node

// Kind identifies the shape of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is a single value in a configuration tree.
type Node interface {
	Kind() Kind
}

// Null is the explicit null scalar. Absent keys and Null are distinct: a
// mapping may carry an explicit null for a key.
type Null struct{}

// Bool is a boolean scalar typed as such by the originating loader.
type Bool bool

// Int is an integer scalar typed as such by the originating loader.
type Int int64

// Float is a floating-point scalar typed as such by the originating loader.
type Float float64

// String is a textual scalar. Untyped formats (properties, environment
// variables) produce only String scalars; numeric and boolean coercion for
// those happens at decode time.
type String string

// Sequence is an ordered list of nodes.
type Sequence []Node

func (Null) Kind() Kind     { return KindNull }
func (Bool) Kind() Kind     { return KindBool }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (String) Kind() Kind   { return KindString }
func (Sequence) Kind() Kind { return KindSequence }

// Mapping is an ordered association of string keys to nodes. Keys are unique;
// setting an existing key replaces its value but keeps the key's original
// position, so the first writer fixes the ordering.
type Mapping struct {
	keys []string
	vals map[string]Node
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[string]Node)}
}

// MappingOf builds a mapping from alternating key/value pairs, in order.
// It panics if a pair is incomplete; it is intended for fixtures and loaders
// that already validated their input.
func MappingOf(pairs ...any) *Mapping {
	if len(pairs)%2 != 0 {
		panic("node: MappingOf requires an even number of arguments")
	}
	m := NewMapping()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(Node))
	}
	return m
}

func (*Mapping) Kind() Kind { return KindMapping }

// Set associates key with value, last write wins.
func (m *Mapping) Set(key string, value Node) {
	if m.vals == nil {
		m.vals = make(map[string]Node)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether the key is present.
func (m *Mapping) Get(key string) (Node, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Interface converts a tree to plain Go values: Null becomes nil, scalars
// become bool/int64/float64/string, Sequence becomes []any, and Mapping
// becomes map[string]any (insertion order is lost). It is used for decoding
// into untyped any targets and for rendering trees.
func Interface(n Node) any {
	switch v := n.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case Sequence:
		out := make([]any, len(v))
		for i, el := range v {
			out[i] = Interface(el)
		}
		return out
	case *Mapping:
		out := make(map[string]any, v.Len())
		for _, k := range v.keys {
			out[k] = Interface(v.vals[k])
		}
		return out
	default:
		return nil
	}
}
