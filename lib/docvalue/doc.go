// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docvalue is the DOC value model: the tagged-union DocValue
// leaf/aggregate type covering Null, String, Array, Hash, Bool, and
// six distinct numeric widths (Int, UInt, Int64, UInt64, Float,
// Double). Unlike PARAM, DOC keys are plain strings, and a Hash's
// canonical order is byte-lexicographic rather than insertion order —
// [NewHash] sorts its entries up front (rejecting a duplicate key as
// InvalidData) so every
// DocValue carrying a Hash is already in canonical order.
package docvalue
