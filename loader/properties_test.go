// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikkallen/dataconf/node"
)

// TestProperties_DottedKeysNest verifies expansion of dotted keys into nested
// mappings with string values.
func TestProperties_DottedKeysNest(t *testing.T) {
	data := []byte("db.host=a\ndb.port=5432\nname=svc\n")

	tree, err := Properties{}.Load(data)
	require.NoError(t, err)

	m := tree.(*node.Mapping)
	db, ok := m.Get("db")
	require.True(t, ok)

	v, _ := db.(*node.Mapping).Get("host")
	assert.Equal(t, node.String("a"), v)
	// Values stay strings; coercion happens at decode time.
	v, _ = db.(*node.Mapping).Get("port")
	assert.Equal(t, node.String("5432"), v)
	v, _ = m.Get("name")
	assert.Equal(t, node.String("svc"), v)
}

// TestProperties_KeyOrder verifies that top-level order follows the file.
func TestProperties_KeyOrder(t *testing.T) {
	tree, err := Properties{}.Load([]byte("z=1\na=2\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a"}, tree.(*node.Mapping).Keys())
}

// TestProperties_Reference verifies ${ref} expansion by the underlying
// parser.
func TestProperties_Reference(t *testing.T) {
	tree, err := Properties{}.Load([]byte("base=/opt\npath=${base}/data\n"))
	require.NoError(t, err)

	v, _ := tree.(*node.Mapping).Get("path")
	assert.Equal(t, node.String("/opt/data"), v)
}

// TestProperties_Empty verifies that an empty file yields an empty mapping.
func TestProperties_Empty(t *testing.T) {
	tree, err := Properties{}.Load([]byte(""))
	require.NoError(t, err)
	assert.Zero(t, tree.(*node.Mapping).Len())
}

// TestFlatExpansion_ConflictLastWins verifies that a deeper path replaces a
// scalar already written at its prefix.
func TestFlatExpansion_ConflictLastWins(t *testing.T) {
	got := expandFlat([]flatPair{
		{key: "a", value: node.String("flat")},
		{key: "a.b", value: node.String("deep")},
	}, ".")

	a, _ := got.Get("a")
	am, ok := a.(*node.Mapping)
	require.True(t, ok)
	v, _ := am.Get("b")
	assert.Equal(t, node.String("deep"), v)
}
