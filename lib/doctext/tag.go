// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctext

import "github.com/windrift/paramtext/lib/paramtag"

// Tag vocabulary for the DOC text leaves that carry a width or
// signedness an untagged scalar's shape can't express. Spellings
// mirror oead's byml_text.cpp (!l, !ul, !d). UInt reuses
// [paramtag.UInt32] ("!u") since both name the same shape (unsigned
// 32-bit).
const (
	tagInt64  = "!l"
	tagUInt64 = "!ul"
	tagDouble = "!d"
	tagUInt   = paramtag.UInt32
)
