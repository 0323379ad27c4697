// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Mapping ───────────────────────────────────────────────────────────────────

// TestMapping_SetGet verifies basic insertion and lookup.
func TestMapping_SetGet(t *testing.T) {
	m := NewMapping()
	m.Set("a", Int(1))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

// TestMapping_KeyOrder verifies that keys keep insertion order.
func TestMapping_KeyOrder(t *testing.T) {
	m := NewMapping()
	m.Set("z", Int(1))
	m.Set("a", Int(2))
	m.Set("m", Int(3))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
}

// TestMapping_LastWriteWins verifies that rewriting a key replaces its value
// but keeps the key's original position.
func TestMapping_LastWriteWins(t *testing.T) {
	m := NewMapping()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(3))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(3), v)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

// TestMappingOf verifies the pair-based constructor.
func TestMappingOf(t *testing.T) {
	m := MappingOf("host", String("a"), "port", Int(5432))

	assert.Equal(t, []string{"host", "port"}, m.Keys())
	v, _ := m.Get("port")
	assert.Equal(t, Int(5432), v)
}

// TestMappingOf_OddArguments verifies that an incomplete pair panics.
func TestMappingOf_OddArguments(t *testing.T) {
	assert.Panics(t, func() { MappingOf("a") })
}

// ── Kinds ─────────────────────────────────────────────────────────────────────

// TestKinds verifies the kind reported by every node shape.
func TestKinds(t *testing.T) {
	assert.Equal(t, KindNull, Null{}.Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindInt, Int(1).Kind())
	assert.Equal(t, KindFloat, Float(1.5).Kind())
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindSequence, Sequence{}.Kind())
	assert.Equal(t, KindMapping, NewMapping().Kind())
}

// ── Interface ─────────────────────────────────────────────────────────────────

// TestInterface verifies the conversion of a nested tree to plain Go values.
func TestInterface(t *testing.T) {
	tree := MappingOf(
		"name", String("svc"),
		"port", Int(8080),
		"ratio", Float(0.5),
		"on", Bool(true),
		"empty", Null{},
		"tags", Sequence{String("a"), String("b")},
		"nested", MappingOf("x", Int(1)),
	)

	got := Interface(tree)

	assert.Equal(t, map[string]any{
		"name":   "svc",
		"port":   int64(8080),
		"ratio":  0.5,
		"on":     true,
		"empty":  nil,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"x": int64(1)},
	}, got)
}

// TestInterface_Nil verifies that a nil node converts to nil.
func TestInterface_Nil(t *testing.T) {
	assert.Nil(t, Interface(nil))
}
