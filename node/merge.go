// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package node

import "sort"

// Source pairs a configuration tree with a merge precedence rank. Higher
// ranks override lower ranks; sources with equal ranks keep their insertion
// order, so among equals the later source wins.
type Source struct {
	Tree Node
	Rank int
}

// Merge folds the sources into a single tree.
//
// Sources are ordered by ascending rank (stable, so equal ranks keep their
// given order) and folded left to right; at every fold step the later tree's
// values win. Two mappings merge key-wise: keys present on both sides merge
// recursively when both values are mappings and are replaced by the later
// value otherwise; keys present on one side carry through. Any other pair of
// node kinds, sequences included, is replaced wholesale by the later value.
//
// Merge never fails and never mutates its inputs; merged mappings are fresh
// nodes, untouched subtrees are shared. Merging nothing yields an empty
// mapping.
func Merge(sources ...Source) Node {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rank < ordered[j].Rank
	})

	var out Node = NewMapping()
	for i, src := range ordered {
		if i == 0 {
			out = src.Tree
			continue
		}
		out = mergeNodes(out, src.Tree)
	}
	return out
}

// mergeNodes combines two trees, the higher-precedence tree second.
func mergeNodes(lower, higher Node) Node {
	lm, lok := lower.(*Mapping)
	hm, hok := higher.(*Mapping)
	if !lok || !hok {
		return higher
	}

	out := NewMapping()
	for _, k := range lm.keys {
		if hv, ok := hm.Get(k); ok {
			out.Set(k, mergeNodes(lm.vals[k], hv))
			continue
		}
		out.Set(k, lm.vals[k])
	}
	for _, k := range hm.keys {
		if _, ok := lm.Get(k); !ok {
			out.Set(k, hm.vals[k])
		}
	}
	return out
}
