// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctext is the DOC Text Reader and Text Emitter: the
// bidirectional translation between the tag-annotated YAML-subset text
// form and the [docvalue] tree. It shares the PARAM reader's
// tag-plus-shape dispatch style (hand-walked *yaml.Node, not struct
// tags) but has no Name Table involvement and no ParamDoc-style
// document envelope -- a DOC text document is the serialized form of a
// single DocValue, whose root must be Null, Array, or Hash.
package doctext
