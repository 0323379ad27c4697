// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/erikkallen/dataconf/node"
)

// This file is the single coercion policy for scalar targets. The decoder
// never converts scalars anywhere else, so a primitive behaves identically
// wherever it occurs in a schema.
//
// Rules:
//   - int    <- Int, fraction-free Float, trimmed parseable String
//   - float  <- Float, precision-preserving Int, trimmed parseable String
//   - bool   <- Bool, String in {true,false,yes,no,on,off} (case-insensitive)
//   - string <- String only
//
// String-to-number and string-to-bool coercion exists for loaders whose
// formats are untyped (environment variables, properties files); values a
// loader already typed as Bool/Int/Float never coerce to string. Null is
// rejected by every rule: optionality is handled above the scalar layer.

type coerceError struct {
	expected string
	got      node.Node
}

func (e *coerceError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.expected, describe(e.got))
}

func reject(expected string, got node.Node) error {
	return &coerceError{expected: expected, got: got}
}

func asInt(n node.Node) (int64, error) {
	switch v := n.(type) {
	case node.Int:
		return int64(v), nil
	case node.Float:
		f := float64(v)
		if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
			return 0, reject("int", n)
		}
		return int64(f), nil
	case node.String:
		s := strings.TrimSpace(string(v))
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
			return int64(f), nil
		}
		return 0, reject("int", n)
	default:
		return 0, reject("int", n)
	}
}

func asFloat(n node.Node) (float64, error) {
	switch v := n.(type) {
	case node.Float:
		return float64(v), nil
	case node.Int:
		f := float64(v)
		if int64(f) != int64(v) {
			return 0, reject("float", n)
		}
		return f, nil
	case node.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, reject("float", n)
		}
		return f, nil
	default:
		return 0, reject("float", n)
	}
}

func asBool(n node.Node) (bool, error) {
	switch v := n.(type) {
	case node.Bool:
		return bool(v), nil
	case node.String:
		switch strings.ToLower(strings.TrimSpace(string(v))) {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
		return false, reject("bool", n)
	default:
		return false, reject("bool", n)
	}
}

func asString(n node.Node) (string, error) {
	if v, ok := n.(node.String); ok {
		return string(v), nil
	}
	return "", reject("string", n)
}

func asDuration(n node.Node) (time.Duration, error) {
	s, err := asString(n)
	if err != nil {
		return 0, reject("duration", n)
	}
	d, perr := parseDuration(strings.TrimSpace(s))
	if perr != nil {
		return 0, reject("duration", n)
	}
	return d, nil
}

// parseDuration accepts Go duration syntax plus bare day and week suffixes
// ("2d", "1.5w"), which configuration sources commonly use.
func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	unit := time.Duration(0)
	switch {
	case strings.HasSuffix(s, "d"):
		unit = 24 * time.Hour
	case strings.HasSuffix(s, "w"):
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unparseable duration %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable duration %q", s)
	}
	return time.Duration(f * float64(unit)), nil
}

func asTime(n node.Node, layouts []string) (time.Time, error) {
	s, err := asString(n)
	if err != nil {
		return time.Time{}, reject("timestamp", n)
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t, nil
		}
	}
	return time.Time{}, reject("timestamp", n)
}
