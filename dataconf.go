// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package dataconf loads application configuration from HOCON, JSON, YAML,
// TOML, Java properties, environment variables, URLs and in-memory maps,
// merges any number of sources with deterministic precedence, and decodes
// the result into a caller-declared Go struct graph.
//
// Single source:
//
//	var cfg Config
//	err := dataconf.Load("app.conf", &cfg)
//
// Multiple sources, later ones override earlier ones:
//
//	err := dataconf.Multi().
//		File("base.conf").
//		File("production.conf").
//		Env("APP").
//		Into(&cfg)
//
// Sum types and enumerations are declared up front with
// [decode.RegisterUnion] and [decode.RegisterEnum].
package dataconf

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/erikkallen/dataconf/decode"
	"github.com/erikkallen/dataconf/loader"
	"github.com/erikkallen/dataconf/node"
)

// Option re-exports decode.Option so most callers only import this package.
type Option = decode.Option

// Strict makes unknown mapping keys fail the decode. See [decode.Strict].
func Strict() Option { return decode.Strict() }

// TimeLayouts overrides the accepted time.Time formats. See
// [decode.TimeLayouts].
func TimeLayouts(layouts ...string) Option { return decode.TimeLayouts(layouts...) }

// Load reads the file at path, picks the loader from its extension, and
// decodes the tree into out.
func Load(path string, out any, opts ...Option) error {
	tree, err := loadFile(path)
	if err != nil {
		return err
	}
	return decode.Decode(tree, out, opts...)
}

// LoadString parses text as HOCON and decodes it into out.
func LoadString(text string, out any, opts ...Option) error {
	tree, err := loader.HOCON{}.Load([]byte(text))
	if err != nil {
		return err
	}
	return decode.Decode(tree, out, opts...)
}

// URL fetches rawURL, picks the loader from the URL path's extension
// (defaulting to HOCON), and decodes the body into out.
func URL(ctx context.Context, rawURL string, out any, opts ...Option) error {
	tree, err := fetchURL(ctx, rawURL)
	if err != nil {
		return err
	}
	return decode.Decode(tree, out, opts...)
}

// Env builds a tree from PREFIX-scoped environment variables and decodes it
// into out.
func Env(prefix string, out any, opts ...Option) error {
	tree, err := loader.NewEnv(prefix).FromPairs(os.Environ())
	if err != nil {
		return err
	}
	return decode.Decode(tree, out, opts...)
}

// Decode decodes an already built configuration tree into out.
func Decode(tree node.Node, out any, opts ...Option) error {
	return decode.Decode(tree, out, opts...)
}

func loadFile(path string) (node.Node, error) {
	l, err := loader.ByExtension(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return l.Load(data)
}

func fetchURL(ctx context.Context, rawURL string) (node.Node, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing config url: %w", err)
	}

	l, lerr := loader.ByExtension(u.Path)
	if lerr != nil {
		l = loader.HOCON{}
	}

	resp, err := resty.New().R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching config from %s: %w", rawURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching config from %s: status %s", rawURL, resp.Status())
	}
	return l.Load(resp.Body())
}
