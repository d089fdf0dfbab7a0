// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dictionary provides read-to-end access to the name-recovery
// dictionaries consumed by the Name Table: a flat list of known names
// (botw_hashed_names.txt) and a list of numbered name templates
// (botw_numbered_names.txt).
//
// The production [Reader], [Default], stores both resources
// zstd-compressed (via go:embed) and decompresses each lazily, once, on
// the first [Reader.ReadAll] call for it -- the dictionary is large enough that
// eager decompression at package init would cost every binary that
// links this module, even ones that never touch PARAM text.
//
// [Map] is a trivial in-memory implementation for tests that want to
// supply a small synthetic dictionary instead of the embedded one.
package dictionary
