// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctext

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/docvalue"
	"github.com/windrift/paramtext/lib/paramerr"
)

// FromText parses a DOC document from its structured text form.
func FromText(text string) (docvalue.DocValue, error) {
	correlationID := uuid.New().String()
	slog.Debug("doctext: parsing document", "correlation_id", correlationID, "bytes_in", len(text))

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "parsing DOC text")
		slog.Debug("doctext: parse failed", "correlation_id", correlationID, "error", wrapped)
		return docvalue.DocValue{}, wrapped
	}
	if len(root.Content) != 1 {
		err := paramerr.NewInvalidData("expected exactly one top-level document node")
		slog.Debug("doctext: parse failed", "correlation_id", correlationID, "error", err)
		return docvalue.DocValue{}, err
	}

	value, err := parseValue(root.Content[0])
	if err != nil {
		slog.Debug("doctext: parse failed", "correlation_id", correlationID, "error", err)
		return docvalue.DocValue{}, err
	}
	slog.Debug("doctext: parsed document", "correlation_id", correlationID)
	return value, nil
}

// parseValue dispatches a single text node to a DocValue by (tag,
// shape): a mapping node is always a Hash, a sequence node is always
// an Array, and a scalar node is dispatched through the tag vocabulary
// with a shape-based fallback.
func parseValue(node *yaml.Node) (docvalue.DocValue, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return parseHash(node)
	case yaml.SequenceNode:
		return parseArray(node)
	case yaml.ScalarNode:
		return parseScalar(node)
	default:
		return docvalue.DocValue{}, paramerr.NewInvalidData("unexpected node shape in a DOC value position")
	}
}

func parseHash(node *yaml.Node) (docvalue.DocValue, error) {
	if len(node.Content)%2 != 0 {
		return docvalue.DocValue{}, paramerr.NewInvalidData("malformed mapping node (odd content length)")
	}
	entries := make([]docvalue.HashEntry, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return docvalue.DocValue{}, paramerr.NewInvalidData("hash key is not a scalar")
		}
		value, err := parseValue(valueNode)
		if err != nil {
			return docvalue.DocValue{}, err
		}
		entries = append(entries, docvalue.HashEntry{Key: keyNode.Value, Value: value})
	}
	hash, err := docvalue.NewHash(entries)
	if err != nil {
		return docvalue.DocValue{}, err
	}
	return hash, nil
}

func parseArray(node *yaml.Node) (docvalue.DocValue, error) {
	values := make([]docvalue.DocValue, len(node.Content))
	for i, child := range node.Content {
		v, err := parseValue(child)
		if err != nil {
			return docvalue.DocValue{}, err
		}
		values[i] = v
	}
	return docvalue.NewArray(values), nil
}

func parseScalar(node *yaml.Node) (docvalue.DocValue, error) {
	switch node.Tag {
	case tagInt64:
		v, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return docvalue.DocValue{}, paramerr.WrapInvalidData(err, "parsing %s value %q", tagInt64, node.Value)
		}
		return docvalue.NewInt64(v), nil
	case tagUInt64:
		v, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			return docvalue.DocValue{}, paramerr.WrapInvalidData(err, "parsing %s value %q", tagUInt64, node.Value)
		}
		return docvalue.NewUInt64(v), nil
	case tagDouble:
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return docvalue.DocValue{}, paramerr.WrapInvalidData(err, "parsing %s value %q", tagDouble, node.Value)
		}
		return docvalue.NewDouble(v), nil
	case tagUInt:
		v, err := strconv.ParseUint(node.Value, 0, 32)
		if err != nil {
			return docvalue.DocValue{}, paramerr.WrapInvalidData(err, "parsing %s value %q", tagUInt, node.Value)
		}
		return docvalue.NewUInt(uint32(v)), nil
	default:
		return scalarShape(node)
	}
}
