// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package dataconf

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/erikkallen/dataconf/decode"
	"github.com/erikkallen/dataconf/loader"
	"github.com/erikkallen/dataconf/node"
)

// Builder accumulates configuration sources and finishes with a merge and
// decode. Each added source outranks the ones before it, so the last source
// wins every conflict. Errors from individual sources are collected and
// surface, joined, when Into runs.
type Builder struct {
	sources []node.Source
	rank    int
	err     error
}

// Multi starts an empty multi-source builder.
func Multi() *Builder {
	return &Builder{}
}

// File adds the file at path, loader chosen by extension.
func (b *Builder) File(path string) *Builder {
	tree, err := loadFile(path)
	return b.add(tree, err)
}

// String adds HOCON text.
func (b *Builder) String(text string) *Builder {
	tree, err := loader.HOCON{}.Load([]byte(text))
	return b.add(tree, err)
}

// URL adds a remote document fetched with the given context, loader chosen
// by the URL path's extension (HOCON when unrecognized).
func (b *Builder) URL(ctx context.Context, rawURL string) *Builder {
	tree, err := fetchURL(ctx, rawURL)
	return b.add(tree, err)
}

// Env adds prefix-scoped environment variables.
func (b *Builder) Env(prefix string) *Builder {
	tree, err := loader.NewEnv(prefix).FromPairs(os.Environ())
	return b.add(tree, err)
}

// Map adds a plain in-memory mapping.
func (b *Builder) Map(m map[string]any) *Builder {
	tree, err := loader.FromMap(m)
	return b.add(tree, err)
}

// Tree adds an already built tree.
func (b *Builder) Tree(tree node.Node) *Builder {
	return b.add(tree, nil)
}

// Source adds a tree with an explicit precedence rank, bypassing the
// builder's insertion-order ranking.
func (b *Builder) Source(src node.Source) *Builder {
	b.sources = append(b.sources, src)
	return b
}

func (b *Builder) add(tree node.Node, err error) *Builder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.rank++
	b.sources = append(b.sources, node.Source{Tree: tree, Rank: b.rank})
	return b
}

// Into merges all sources and decodes the result into out. If any source
// failed to load, the joined error is returned and no decode happens.
func (b *Builder) Into(out any, opts ...Option) error {
	tree, err := b.Merge()
	if err != nil {
		return err
	}
	return decode.Decode(tree, out, opts...)
}

// Merge returns the merged tree without decoding, for callers that want to
// inspect or render the combined configuration.
func (b *Builder) Merge() (node.Node, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config sources: %w", b.err)
	}
	return node.Merge(b.sources...), nil
}
