// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── flag parsing ─────────────────────────────────────────────────────────────

// TestParseFlags_AllFlags parses every supported flag.
func TestParseFlags_AllFlags(t *testing.T) {
	// Act
	s, err := parseFlags([]string{
		"-f", "app.conf",
		"-format", "json",
		"-e", "MYAPP",
		"-separator", "__",
		"-compact",
		"-log-level", "debug",
	}, io.Discard)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "app.conf", s.File)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, "MYAPP", s.EnvPrefix)
	assert.Equal(t, "__", s.Separator)
	assert.True(t, s.Compact)
	assert.Equal(t, "debug", s.LogLevel)
}

// TestParseFlags_PositionalFile uses the first positional argument when no
// -f flag was given.
func TestParseFlags_PositionalFile(t *testing.T) {
	s, err := parseFlags([]string{"settings.yaml"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", s.File)
}

// TestParseFlags_FlagBeatsPositional keeps the -f value when both forms
// appear.
func TestParseFlags_FlagBeatsPositional(t *testing.T) {
	s, err := parseFlags([]string{"-f", "flagged.conf", "positional.conf"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "flagged.conf", s.File)
}

// TestParseFlags_Unknown reports unrecognized flags.
func TestParseFlags_Unknown(t *testing.T) {
	var out bytes.Buffer

	_, err := parseFlags([]string{"-bogus"}, &out)

	assert.Error(t, err)
}

// ── merged settings ──────────────────────────────────────────────────────────

// TestGetSettings_Defaults fills separator and log level when nothing else
// sets them.
func TestGetSettings_Defaults(t *testing.T) {
	// Act
	s, err := GetSettings([]string{"-f", "app.conf"}, io.Discard)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "_", s.Separator)
	assert.Equal(t, "info", s.LogLevel)
}

// TestGetSettings_EnvFillsGaps reads DATACONF_-prefixed variables for fields
// the flags left empty.
func TestGetSettings_EnvFillsGaps(t *testing.T) {
	// Arrange
	t.Setenv("DATACONF_FILE", "fromenv.conf")
	t.Setenv("DATACONF_LOG_LEVEL", "warn")

	// Act
	s, err := GetSettings(nil, io.Discard)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fromenv.conf", s.File)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "_", s.Separator, "defaults still apply below env")
}

// TestGetSettings_FlagsBeatEnv gives flag values priority over the
// environment.
func TestGetSettings_FlagsBeatEnv(t *testing.T) {
	// Arrange
	t.Setenv("DATACONF_FILE", "fromenv.conf")
	t.Setenv("DATACONF_FORMAT", "yaml")

	// Act
	s, err := GetSettings([]string{"-f", "fromflag.conf"}, io.Discard)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fromflag.conf", s.File)
	assert.Equal(t, "yaml", s.Format, "env still fills fields flags left empty")
}

// TestGetSettings_NoFile rejects a run with no file from any source.
func TestGetSettings_NoFile(t *testing.T) {
	_, err := GetSettings(nil, io.Discard)

	assert.ErrorIs(t, err, ErrNoFile)
}
