// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramerr

import "fmt"

// InvalidData reports a format violation: malformed structured text,
// an unrecognised tag where one is required, a sequence of the wrong
// arity, a fixed-width string overflowing its bound, a duplicate map
// key, or a mapping that matches none of the expected shape
// templates. It wraps an optional underlying cause.
type InvalidData struct {
	Message string
	Cause   error
}

func (e *InvalidData) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid data: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid data: %s", e.Message)
}

func (e *InvalidData) Unwrap() error {
	return e.Cause
}

// NewInvalidData builds an InvalidData with no wrapped cause.
func NewInvalidData(format string, args ...any) *InvalidData {
	return &InvalidData{Message: fmt.Sprintf(format, args...)}
}

// WrapInvalidData builds an InvalidData wrapping cause.
func WrapInvalidData(cause error, format string, args ...any) *InvalidData {
	return &InvalidData{Message: fmt.Sprintf(format, args...), Cause: cause}
}

// TypeMismatch is raised by a value type's As* accessors when the
// caller requests a variant the value does not hold. Want and Got are
// the variant names (e.g. "int", "string"), not a specific Kind type,
// so this one error type serves both the PARAM and DOC value models.
type TypeMismatch struct {
	Want string
	Got  string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}

// NewTypeMismatch builds a TypeMismatch from two variant names.
func NewTypeMismatch(want, got string) *TypeMismatch {
	return &TypeMismatch{Want: want, Got: got}
}
