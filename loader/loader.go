// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package loader turns raw configuration text of each supported format into
// the generic tree of package node. Loaders are thin adapters over existing
// parsers; all typing and merging decisions live downstream in node and
// decode.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erikkallen/dataconf/node"
)

// Format names a supported configuration syntax.
type Format string

const (
	FormatHOCON      Format = "hocon"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatTOML       Format = "toml"
	FormatProperties Format = "properties"
)

// Loader parses one configuration format into a generic tree.
type Loader interface {
	// Format identifies the syntax this loader parses.
	Format() Format
	// Load parses data and returns the resulting tree, or an *Error if the
	// text is malformed.
	Load(data []byte) (node.Node, error)
}

// Error wraps a parse failure with the format that produced it.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ByExtension picks a loader from a file path's suffix. Recognized:
// .conf/.hocon, .json, .yaml/.yml, .toml, .properties.
func ByExtension(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".conf", ".hocon":
		return HOCON{}, nil
	case ".json":
		return JSON{}, nil
	case ".yaml", ".yml":
		return YAML{}, nil
	case ".toml":
		return TOML{}, nil
	case ".properties":
		return Properties{}, nil
	default:
		return nil, fmt.Errorf("no loader for file extension of %q", path)
	}
}

// ForFormat returns the loader for a format name, accepting the same
// spellings as the Format constants plus "yml".
func ForFormat(name string) (Loader, error) {
	switch Format(strings.ToLower(name)) {
	case FormatHOCON:
		return HOCON{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML, Format("yml"):
		return YAML{}, nil
	case FormatTOML:
		return TOML{}, nil
	case FormatProperties:
		return Properties{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
