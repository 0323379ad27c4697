// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"github.com/BurntSushi/toml"

	"github.com/erikkallen/dataconf/node"
)

// TOML parses TOML documents. The parser yields native Go values, converted
// to the tree by the same walker FromMap uses; timestamps become RFC 3339
// strings so decode's time layouts apply.
type TOML struct{}

func (TOML) Format() Format { return FormatTOML }

func (TOML) Load(data []byte) (node.Node, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &Error{Format: FormatTOML, Err: err}
	}
	n, err := goMap(m)
	if err != nil {
		return nil, &Error{Format: FormatTOML, Err: err}
	}
	return n, nil
}
