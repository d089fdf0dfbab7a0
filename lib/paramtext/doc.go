// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramtext is the PARAM Text Reader and Text Emitter: the
// bidirectional translation between the YAML-compatible structured
// text form (§6) and the [paramvalue] tree. Reading walks a
// hand-built *yaml.Node tree rather than relying on struct tags,
// because the mapping from a text node to a value-model type depends
// on which keys are present and which tag is attached, not on a fixed
// Go struct shape.
//
// FromText populates a per-document Name Table (see [nametable]) as
// it observes string-valued parameters; ToText builds one the same
// way before resolving keys, so a document's own string fields can
// recover sibling hash keys even when neither name is in the default
// dictionary.
package paramtext
