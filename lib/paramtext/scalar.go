// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtext

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/paramerr"
	"github.com/windrift/paramtext/lib/paramvalue"
)

// isNullScalar reports whether node is an empty or explicit-null
// scalar.
func isNullScalar(node *yaml.Node) bool {
	if node.Tag == "!!null" {
		return true
	}
	switch node.Value {
	case "", "~", "null", "Null", "NULL":
		return true
	default:
		return false
	}
}

// scalarShape classifies an untagged (or unrecognised-tag) scalar's
// textual form per §4.4 step 2: true/false -> Bool; optional sign
// followed by digits (decimal or 0x hex) -> Int; a floating-point
// form -> Float; anything else -> String. An empty or null scalar is
// InvalidData.
func scalarShape(node *yaml.Node) (paramvalue.Parameter, error) {
	text := node.Value

	// A quoted scalar is an explicit string, independent of what its
	// text looks like -- this is how a String value whose text happens
	// to look like a number, a bool, or one of the null spellings
	// round-trips as String rather than being reclassified by shape or
	// mistaken for an actual null. This check must run before
	// isNullScalar: a quoted "" or "null" is a real string, only a
	// plain (unquoted) one is the absence of a value.
	if isQuoted(node) {
		return paramvalue.NewString(text), nil
	}

	if isNullScalar(node) {
		return paramvalue.Parameter{}, paramerr.NewInvalidData("unexpected scalar type (empty or null)")
	}

	if text == "true" || text == "false" {
		return paramvalue.NewBool(text == "true"), nil
	}

	if looksLikeInteger(text) {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(text, "-"), "+"), 0, 64)
		if err == nil {
			if strings.HasPrefix(text, "-") {
				return paramvalue.NewInt(-int32(uint32(v))), nil
			}
			return paramvalue.NewInt(int32(uint32(v))), nil
		}
	}

	if v, err := strconv.ParseFloat(text, 32); err == nil && looksLikeFloat(text) {
		return paramvalue.NewFloat(float32(v)), nil
	}

	return paramvalue.NewString(text), nil
}

// looksLikeInteger reports whether text is an optionally signed
// decimal or 0x-prefixed hexadecimal integer literal.
func looksLikeInteger(text string) bool {
	t := strings.TrimPrefix(strings.TrimPrefix(text, "-"), "+")
	if t == "" {
		return false
	}
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
		if t == "" {
			return false
		}
		for _, c := range t {
			if !isHexDigit(c) {
				return false
			}
		}
		return true
	}
	for _, c := range t {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// isQuoted reports whether node's text carries an explicit string
// style rather than being a bare plain scalar.
func isQuoted(node *yaml.Node) bool {
	switch node.Style {
	case yaml.DoubleQuotedStyle, yaml.SingleQuotedStyle, yaml.LiteralStyle, yaml.FoldedStyle:
		return true
	default:
		return false
	}
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// looksLikeFloat reports whether text has the textual shape of a
// floating-point literal (a decimal point or exponent marker),
// distinguishing "3" (Int) from "3.0" or "3e2" (Float).
func looksLikeFloat(text string) bool {
	return strings.ContainsAny(text, ".eE") && !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X")
}

// formatInt formats v the way the emitter writes an untagged Int
// scalar.
func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatUint32 formats v the way the emitter writes a !u-tagged
// UInt32 scalar.
func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// formatFloat32 formats v with the minimal number of digits that
// round-trip to the same float32, the way the emitter writes any
// float-shaped scalar (Float, Vec/Color/Quat/Curve/BufferF32
// elements). A whole-valued float (e.g. 3) is given an explicit ".0"
// so its text stays float-shaped: an untagged "3" would re-read as
// Int, silently changing the parameter's variant.
func formatFloat32(v float32) string {
	text := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if looksLikeInteger(text) {
		text += ".0"
	}
	return text
}
