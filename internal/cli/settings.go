// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package cli assembles the settings of the dataconf command itself from
// flags and DATACONF_-prefixed environment variables, merged in priority
// order (flags win over environment, environment wins over defaults).
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"dario.cat/mergo"
	env "github.com/caarlos0/env/v11"
)

// Settings holds everything the dataconf command needs to run.
type Settings struct {
	// File is the configuration file to load and validate.
	// Env: DATACONF_FILE, flag: -f / -file, or the first positional argument.
	File string `env:"FILE"`

	// Format overrides the loader chosen from the file extension
	// (hocon, json, yaml, toml, properties).
	// Env: DATACONF_FORMAT, flag: -format.
	Format string `env:"FORMAT"`

	// EnvPrefix, when non-empty, overlays PREFIX-scoped environment
	// variables on top of the file, environment winning.
	// Env: DATACONF_ENV_PREFIX, flag: -e / -env-prefix.
	EnvPrefix string `env:"ENV_PREFIX"`

	// Separator splits environment variable keys into nested paths.
	// Env: DATACONF_SEPARATOR, flag: -separator.
	Separator string `env:"SEPARATOR"`

	// Compact disables indentation of the printed merged tree.
	// Env: DATACONF_COMPACT, flag: -compact.
	Compact bool `env:"COMPACT"`

	// LogLevel sets the CLI log verbosity (debug, info, warn, error).
	// Env: DATACONF_LOG_LEVEL, flag: -log-level.
	LogLevel string `env:"LOG_LEVEL"`
}

// GetSettings loads, merges, and validates the command settings from flags
// and environment, flags taking priority.
func GetSettings(args []string, output io.Writer) (*Settings, error) {
	return newSettingsBuilder().
		withFlags(args, output).
		withEnv().
		withDefaults().
		build()
}

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 3),
	}
}

// build folds the accumulated settings; earlier entries outrank later ones
// because mergo only fills fields that are still zero.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, settings.validate()
}

func (b *settingsBuilder) withFlags(args []string, output io.Writer) *settingsBuilder {
	flags, err := parseFlags(args, output)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "DATACONF_"}); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.configs = append(b.configs, &Settings{
		Separator: "_",
		LogLevel:  "info",
	})
	return b
}

func parseFlags(args []string, output io.Writer) (*Settings, error) {
	var s Settings

	fs := flag.NewFlagSet("dataconf", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&s.File, "f", "", "Configuration file path")
	fs.StringVar(&s.File, "file", "", "Configuration file path (alias)")
	fs.StringVar(&s.Format, "format", "", "Force format: hocon, json, yaml, toml, properties")
	fs.StringVar(&s.EnvPrefix, "e", "", "Overlay environment variables with this prefix")
	fs.StringVar(&s.EnvPrefix, "env-prefix", "", "Overlay environment variables with this prefix (alias)")
	fs.StringVar(&s.Separator, "separator", "", "Environment variable key separator")
	fs.BoolVar(&s.Compact, "compact", false, "Print the merged tree without indentation")
	fs.StringVar(&s.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if s.File == "" && fs.NArg() > 0 {
		s.File = fs.Arg(0)
	}
	return &s, nil
}

// ErrNoFile is returned when neither a flag, a positional argument, nor the
// environment named a file to load.
var ErrNoFile = errors.New("no configuration file given")

func (s *Settings) validate() error {
	if s.File == "" {
		return ErrNoFile
	}
	return nil
}
