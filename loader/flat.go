// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"strings"

	"github.com/erikkallen/dataconf/node"
)

type flatPair struct {
	key   string
	value node.Node
}

// expandFlat turns an ordered list of separator-delimited keys into a nested
// mapping: {"db.host": x, "db.port": y} with sep "." becomes
// {db: {host: x, port: y}}. Later pairs win on conflict; a scalar in the way
// of a deeper path is replaced by a fresh mapping.
func expandFlat(pairs []flatPair, sep string) *node.Mapping {
	root := node.NewMapping()
	for _, p := range pairs {
		segs := strings.Split(p.key, sep)
		cur := root
		for i, seg := range segs {
			if i == len(segs)-1 {
				cur.Set(seg, p.value)
				break
			}
			next, ok := cur.Get(seg)
			nm, isMapping := next.(*node.Mapping)
			if !ok || !isMapping {
				nm = node.NewMapping()
				cur.Set(seg, nm)
			}
			cur = nm
		}
	}
	return root
}
