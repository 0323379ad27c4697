// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"sort"
	"strings"

	"github.com/gurkankaymak/hocon"

	"github.com/erikkallen/dataconf/node"
)

// Env turns flat PREFIX_FIELD_SUBFIELD=value environment pairs into a nested
// mapping. Keys are matched against Prefix plus Separator, the prefix is
// stripped, the rest is lowercased and split on Separator into a path.
// Values that look like HOCON arrays or objects are parsed as HOCON
// fragments so lists and inline objects can be passed through a single
// variable; everything else stays a string scalar for decode-time coercion.
type Env struct {
	Prefix string
	// Separator splits key segments; defaults to "_".
	Separator string
}

// NewEnv returns an Env source for the given prefix with the default
// separator.
func NewEnv(prefix string) *Env {
	return &Env{Prefix: prefix, Separator: "_"}
}

// FromPairs builds the tree from the given KEY=VALUE pairs, os.Environ
// style. Pairs are sorted by key first so the result does not depend on the
// process environment order.
func (e *Env) FromPairs(environ []string) (node.Node, error) {
	sep := e.Separator
	if sep == "" {
		sep = "_"
	}
	prefix := e.Prefix + sep

	keyed := make([]string, 0, len(environ))
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			keyed = append(keyed, kv)
		}
	}
	sort.Strings(keyed)

	pairs := make([]flatPair, 0, len(keyed))
	for _, kv := range keyed {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimPrefix(key, prefix))
		pairs = append(pairs, flatPair{key: key, value: envValue(value)})
	}
	return expandFlat(pairs, sep), nil
}

// envValue parses bracketed values as HOCON fragments, falling back to a
// plain string when the fragment is malformed.
func envValue(raw string) node.Node {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		cfg, err := hocon.ParseString("v = " + trimmed)
		if err == nil {
			if root, ok := hoconToNode(cfg.GetRoot()).(*node.Mapping); ok {
				if v, found := root.Get("v"); found {
					return v
				}
			}
		}
	}
	return node.String(raw)
}
