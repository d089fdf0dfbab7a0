// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import "github.com/windrift/paramtext/lib/paramerr"

// InvalidData and TypeMismatch are the two error kinds every package
// in this module raises; see [paramerr] for their definitions. They
// are aliased here so paramvalue's own API surface (constructors,
// accessors) can return them without every caller importing paramerr
// directly.
type InvalidData = paramerr.InvalidData

type TypeMismatch = paramerr.TypeMismatch

// NewInvalidData builds an [InvalidData] with no wrapped cause.
func NewInvalidData(format string, args ...any) *InvalidData {
	return paramerr.NewInvalidData(format, args...)
}

// WrapInvalidData builds an [InvalidData] wrapping cause.
func WrapInvalidData(cause error, format string, args ...any) *InvalidData {
	return paramerr.WrapInvalidData(cause, format, args...)
}

// newTypeMismatch is a constructor-site convenience for accessors.
func newTypeMismatch(want, got Kind) *TypeMismatch {
	return paramerr.NewTypeMismatch(want.String(), got.String())
}
