// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"github.com/magiconair/properties"

	"github.com/erikkallen/dataconf/node"
)

// Properties parses Java-style .properties files. Dotted keys expand into
// nested mappings ("db.host=a" becomes {db: {host: "a"}}); every value stays
// a string scalar and is coerced at decode time, matching the format's
// untyped nature. ${ref} expansion is handled by the underlying parser.
type Properties struct{}

func (Properties) Format() Format { return FormatProperties }

func (Properties) Load(data []byte) (node.Node, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, &Error{Format: FormatProperties, Err: err}
	}

	pairs := make([]flatPair, 0, p.Len())
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		pairs = append(pairs, flatPair{key: k, value: node.String(v)})
	}
	return expandFlat(pairs, "."), nil
}
