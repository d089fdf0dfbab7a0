// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package orderedmap is a minimal insertion-order-preserving map, used
// everywhere this module needs "a key/value collection whose iteration
// order is the order entries were added" -- PARAM's objects, lists, and
// params maps. DOC's Hash does not use it; it keeps its entries sorted
// by key instead.
//
// It is a plain array-of-pairs with a secondary index map for O(1)
// lookup, one of the two implementation strategies the PARAM/DOC
// format's own design notes call out as equally valid (the other being
// a dedicated ordered-map data structure). [Map.Entries] returns the
// Map's own backing slice: a later insertion may reallocate it, and
// [Map.Delete] shifts every later entry down one position.
package orderedmap
