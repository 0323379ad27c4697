// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikkallen/dataconf/node"
)

// ── int ───────────────────────────────────────────────────────────────────────

func TestAsInt(t *testing.T) {
	tests := []struct {
		name    string
		in      node.Node
		want    int64
		wantErr bool
	}{
		{name: "int", in: node.Int(42), want: 42},
		{name: "fractionless float", in: node.Float(5.0), want: 5},
		{name: "lossy float", in: node.Float(5.5), wantErr: true},
		{name: "numeric string", in: node.String("42"), want: 42},
		{name: "padded string", in: node.String("  42 "), want: 42},
		{name: "fractionless float string", in: node.String("5.0"), want: 5},
		{name: "lossy float string", in: node.String("5.5"), wantErr: true},
		{name: "negative string", in: node.String("-7"), want: -7},
		{name: "garbage string", in: node.String("abc"), wantErr: true},
		{name: "bool", in: node.Bool(true), wantErr: true},
		{name: "null", in: node.Null{}, wantErr: true},
		{name: "sequence", in: node.Sequence{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asInt(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── float ─────────────────────────────────────────────────────────────────────

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      node.Node
		want    float64
		wantErr bool
	}{
		{name: "float", in: node.Float(0.5), want: 0.5},
		{name: "small int", in: node.Int(42), want: 42},
		{name: "numeric string", in: node.String("0.5"), want: 0.5},
		{name: "integer string", in: node.String("3"), want: 3},
		{name: "garbage string", in: node.String("x"), wantErr: true},
		{name: "bool", in: node.Bool(false), wantErr: true},
		{name: "null", in: node.Null{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asFloat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAsFloat_PrecisionLossRejected verifies that an int64 beyond float64's
// exact range does not silently round.
func TestAsFloat_PrecisionLossRejected(t *testing.T) {
	_, err := asFloat(node.Int(1<<60 + 1))
	assert.Error(t, err)
}

// ── bool ──────────────────────────────────────────────────────────────────────

func TestAsBool(t *testing.T) {
	tests := []struct {
		name    string
		in      node.Node
		want    bool
		wantErr bool
	}{
		{name: "bool true", in: node.Bool(true), want: true},
		{name: "string true", in: node.String("true"), want: true},
		{name: "string TRUE", in: node.String("TRUE"), want: true},
		{name: "string yes", in: node.String("yes"), want: true},
		{name: "string on", in: node.String("on"), want: true},
		{name: "string false", in: node.String("false"), want: false},
		{name: "string no", in: node.String("no"), want: false},
		{name: "string off", in: node.String("off"), want: false},
		{name: "numeric string", in: node.String("1"), wantErr: true},
		{name: "int", in: node.Int(1), wantErr: true},
		{name: "null", in: node.Null{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asBool(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── string ────────────────────────────────────────────────────────────────────

// TestAsString_OnlyStrings verifies that values already typed by a loader
// never stringify implicitly.
func TestAsString_OnlyStrings(t *testing.T) {
	got, err := asString(node.String("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = asString(node.Int(42))
	assert.Error(t, err)
	_, err = asString(node.Bool(true))
	assert.Error(t, err)
	_, err = asString(node.Float(1.5))
	assert.Error(t, err)
}

// ── duration ──────────────────────────────────────────────────────────────────

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30s", want: 30 * time.Second},
		{in: "1h30m", want: 90 * time.Minute},
		{in: "2d", want: 48 * time.Hour},
		{in: "1.5d", want: 36 * time.Hour},
		{in: "1w", want: 7 * 24 * time.Hour},
		{in: "nonsense", wantErr: true},
		{in: "d", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── time ──────────────────────────────────────────────────────────────────────

func TestAsTime(t *testing.T) {
	got, err := asTime(node.String("2023-04-05"), DefaultTimeLayouts)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)))

	_, err = asTime(node.String("not a date"), DefaultTimeLayouts)
	assert.Error(t, err)

	_, err = asTime(node.Int(1680000000), DefaultTimeLayouts)
	assert.Error(t, err)
}
