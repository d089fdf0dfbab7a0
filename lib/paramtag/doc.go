// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramtag is the Tag Registry: the static bidirectional
// mapping between the textual tags a PARAM Parameter carries in its
// structured text form and the [paramvalue.Kind] it denotes, plus the
// sequence/scalar classification rules the Text Reader and Text
// Emitter both depend on.
package paramtag
