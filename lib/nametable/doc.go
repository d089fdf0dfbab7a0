// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nametable implements the Name Table: the hash→string
// resolver the Text Emitter consults to render PARAM keys as readable
// names instead of bare hashes, and the Text Reader populates with
// every string-valued parameter it observes.
//
// Two tables exist in the lifetime of a document: [Default], a
// process-wide singleton eagerly populated from the embedded
// dictionaries on first use, and a per-document extra table built
// fresh by [New] and fed via [Table.AddReference]. Callers compose
// them with [Resolve], which tries the extra table before the
// default.
package nametable
