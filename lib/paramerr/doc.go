// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramerr holds the two error kinds shared by every value
// model and codec package in this module: InvalidData for format
// violations, and TypeMismatch for wrong-variant accessor calls. Both
// are pointer error types that callers match with errors.As;
// InvalidData also exposes its optional underlying cause through
// Unwrap.
package paramerr
