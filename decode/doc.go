// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package decode maps a merged configuration tree onto an arbitrary
// caller-declared Go type graph.
//
// The target schema is described by a type descriptor derived once per
// reflect.Type and cached, so decoding itself is a pure function of
// (tree, descriptor, options). Supported target shapes: primitives, named
// primitive types, time.Duration, time.Time, encoding.TextUnmarshaler
// implementors, pointers (optional values), slices, string-keyed maps,
// structs, the empty interface, registered enumerations ([RegisterEnum]) and
// registered interface unions ([RegisterUnion]).
//
// Every failure carries the exact field path at which it occurred; see
// [TypeMismatchError], [MissingFieldError], [UnknownFieldError],
// [UnknownEnumError] and [UnionError]. Decoding either returns a fully
// populated value or an error, never a partial result.
package decode
