// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"strconv"
	"strings"
)

// Segment is one step of a field path: either a mapping key or a sequence
// index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a mapping-key segment.
func Key(name string) Segment { return Segment{key: name} }

// Index returns a sequence-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// Path locates a value inside a configuration tree, accumulated during
// recursive decoding and attached to every decode error.
type Path []Segment

// Child returns a new path with a key segment appended. The receiver is not
// modified and the result does not alias its backing array.
func (p Path) Child(key string) Path { return p.push(Key(key)) }

// Elem returns a new path with an index segment appended.
func (p Path) Elem(i int) Path { return p.push(Index(i)) }

func (p Path) push(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// String renders the path in dotted form, e.g. ".db.hosts[2].port".
// The empty path renders as "." (the tree root).
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	var b strings.Builder
	for _, s := range p {
		if s.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(s.key)
	}
	return b.String()
}
