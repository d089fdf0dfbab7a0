// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctext

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/docvalue"
)

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

func isQuoted(node *yaml.Node) bool {
	switch node.Style {
	case yaml.DoubleQuotedStyle, yaml.SingleQuotedStyle, yaml.LiteralStyle, yaml.FoldedStyle:
		return true
	default:
		return false
	}
}

// scalarShape classifies an untagged (or unrecognised-tag) DOC scalar
// the same way the PARAM reader does: true/false -> Bool; a decimal or
// 0x integer -> Int; a float-shaped literal -> Float; a quoted scalar
// or anything else -> String. A null scalar maps to [docvalue.Null].
func scalarShape(node *yaml.Node) (docvalue.DocValue, error) {
	text := node.Value

	// A quoted scalar is an explicit string regardless of what its text
	// looks like, checked before isNullScalar: a quoted "" or "null" is
	// a real (possibly empty) string, only a plain one is the absence
	// of a value.
	if isQuoted(node) {
		return docvalue.NewString(text), nil
	}
	if isNullScalar(node) {
		return docvalue.Null(), nil
	}
	if text == "true" || text == "false" {
		return docvalue.NewBool(text == "true"), nil
	}
	if looksLikeInteger(text) {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(text, "-"), "+"), 0, 64)
		if err == nil {
			if strings.HasPrefix(text, "-") {
				return docvalue.NewInt(-int32(uint32(v))), nil
			}
			return docvalue.NewInt(int32(uint32(v))), nil
		}
	}
	if v, err := strconv.ParseFloat(text, 32); err == nil && looksLikeFloat(text) {
		return docvalue.NewFloat(float32(v)), nil
	}
	return docvalue.NewString(text), nil
}

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

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func looksLikeFloat(text string) bool {
	return strings.ContainsAny(text, ".eE") && !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X")
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// formatFloat32 keeps a whole-valued float text-distinguishable from
// an int (e.g. "3.0" not "3") so an untagged Float round-trips as
// Float rather than being reclassified Int by scalarShape on re-read.
func formatFloat32(v float32) string {
	text := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if looksLikeInteger(text) {
		text += ".0"
	}
	return text
}

func formatFloat64(v float64) string {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if looksLikeInteger(text) {
		text += ".0"
	}
	return text
}
