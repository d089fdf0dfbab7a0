// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramvalue is the PARAM value model: the tagged-union
// Parameter leaf type, the ParamObject/ParamList/ParamDoc tree, and
// aliases of the two error kinds (InvalidData, TypeMismatch) defined
// in [paramerr].
//
// A Parameter is constructed through one of the New* functions, which
// enforce the leaf's invariants (fixed-string byte bounds, vector and
// curve arity) at construction time, and read back through a matching
// As* accessor, which fails with TypeMismatch if the Parameter holds a
// different variant. Nothing in this package touches text or binary
// encoding; it is the shape of the data, not its serialization.
package paramvalue
