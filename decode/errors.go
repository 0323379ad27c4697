// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erikkallen/dataconf/node"
)

// Sentinel errors for matching decode failures with errors.Is, regardless of
// the path and detail carried by the concrete error value.
var (
	// ErrTypeMismatch indicates a tree value whose shape or scalar kind the
	// coercion rules reject for the target type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMissingField indicates an absent mapping key for a required struct
	// field without a default.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownField indicates mapping keys matching no declared struct
	// field; reported only in strict mode.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownEnumValue indicates a scalar matching none of an
	// enumeration's registered labels or values.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrUnionExhausted indicates that every variant of a union failed.
	ErrUnionExhausted = errors.New("no union variant matched")
)

// TypeMismatchError reports a value the coercion rules reject for the
// expected target type.
type TypeMismatchError struct {
	Path     Path
	Expected string
	Got      node.Node
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s at %s, got %s", e.Expected, e.Path, describe(e.Got))
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// MissingFieldError reports a required struct field absent from the source
// mapping. Path includes the field itself.
type MissingFieldError struct {
	Path  Path
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q at %s", e.Field, e.Path)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// UnknownFieldError reports mapping keys that match no declared field of the
// struct decoded at Path. Only produced in strict mode.
type UnknownFieldError struct {
	Path Path
	Keys []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unexpected key(s) %q at %s", strings.Join(e.Keys, ", "), e.Path)
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }

// UnknownEnumError reports a scalar that matches none of the enumeration's
// registered labels (or, for integer enums, values).
type UnknownEnumError struct {
	Path   Path
	Value  string
	Labels []string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown enum value %q at %s, valid labels: %s",
		e.Value, e.Path, strings.Join(e.Labels, ", "))
}

func (e *UnknownEnumError) Is(target error) bool { return target == ErrUnknownEnumValue }

// UnionError reports that no variant of a registered union accepted the
// value. Causes holds one error per attempted variant, in declaration order,
// so the failure is diagnosable variant by variant.
type UnionError struct {
	Path   Path
	Type   string
	Causes []error
}

func (e *UnionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no variant of %s matched at %s, failed variants:", e.Type, e.Path)
	for _, c := range e.Causes {
		b.WriteString("\n- ")
		b.WriteString(c.Error())
	}
	return b.String()
}

func (e *UnionError) Is(target error) bool { return target == ErrUnionExhausted }

// Unwrap exposes the per-variant errors to errors.Is/As.
func (e *UnionError) Unwrap() []error { return e.Causes }

// describe renders a node for error messages: kind plus the value for
// scalars, bare kind otherwise.
func describe(n node.Node) string {
	switch v := n.(type) {
	case nil, node.Null:
		return "null"
	case node.Bool:
		return fmt.Sprintf("bool %v", bool(v))
	case node.Int:
		return fmt.Sprintf("int %d", int64(v))
	case node.Float:
		return fmt.Sprintf("float %v", float64(v))
	case node.String:
		return fmt.Sprintf("string %q", string(v))
	default:
		return n.Kind().String()
	}
}
