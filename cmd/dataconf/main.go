// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Command dataconf loads a configuration file (optionally overlaid with
// prefixed environment variables), merges it, and prints the canonical JSON
// rendering of the merged tree. Exit code 0 on success, non-zero when the
// file cannot be loaded.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/erikkallen/dataconf/internal/cli"
	"github.com/erikkallen/dataconf/internal/logger"
	"github.com/erikkallen/dataconf/loader"
	"github.com/erikkallen/dataconf/node"
)

func main() {
	settings, err := cli.GetSettings(os.Args[1:], os.Stderr)
	if err != nil {
		logger.NewLogger("dataconf", "info").Fatal().Err(err).Msg("error getting settings")
	}

	log := logger.NewLogger("dataconf", settings.LogLevel)
	log.Debug().Any("settings", settings).Msg("resolved settings")

	if err := run(settings, log); err != nil {
		log.Fatal().Err(err).Msg("error validating config")
	}
}

func run(settings *cli.Settings, log *logger.Logger) error {
	var (
		l   loader.Loader
		err error
	)
	if settings.Format != "" {
		l, err = loader.ForFormat(settings.Format)
	} else {
		l, err = loader.ByExtension(settings.File)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(settings.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", settings.File, err)
	}

	tree, err := l.Load(data)
	if err != nil {
		return fmt.Errorf("loading %s: %w", settings.File, err)
	}
	sources := []node.Source{{Tree: tree, Rank: 1}}

	if settings.EnvPrefix != "" {
		envTree, err := (&loader.Env{Prefix: settings.EnvPrefix, Separator: settings.Separator}).
			FromPairs(os.Environ())
		if err != nil {
			return fmt.Errorf("loading environment overlay: %w", err)
		}
		sources = append(sources, node.Source{Tree: envTree, Rank: 2})
		log.Debug().Str("prefix", settings.EnvPrefix).Msg("applied environment overlay")
	}

	merged := node.Interface(node.Merge(sources...))

	var out []byte
	if settings.Compact {
		out, err = json.Marshal(merged)
	} else {
		out, err = json.MarshalIndent(merged, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("rendering merged tree: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
