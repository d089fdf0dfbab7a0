// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctext

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/docvalue"
	"github.com/windrift/paramtext/lib/paramerr"
)

// ToText emits value as DOC structured text. Per §3, only Null, Array,
// and Hash may serve as a document root; any other root variant is
// InvalidData.
func ToText(value docvalue.DocValue) (string, error) {
	correlationID := uuid.New().String()
	slog.Debug("doctext: emitting document", "correlation_id", correlationID)

	switch value.Kind() {
	case docvalue.KindNull, docvalue.KindArray, docvalue.KindHash:
	default:
		err := paramerr.NewInvalidData("DOC document root must be Null, Array, or Hash, got %s", value.Kind())
		slog.Debug("doctext: emit failed", "correlation_id", correlationID, "error", err)
		return "", err
	}

	node, err := emitValue(value)
	if err != nil {
		slog.Debug("doctext: emit failed", "correlation_id", correlationID, "error", err)
		return "", err
	}

	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "emitting DOC text")
		slog.Debug("doctext: emit failed", "correlation_id", correlationID, "error", wrapped)
		return "", wrapped
	}
	if err := enc.Close(); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "emitting DOC text")
		slog.Debug("doctext: emit failed", "correlation_id", correlationID, "error", wrapped)
		return "", wrapped
	}
	slog.Debug("doctext: emitted document", "correlation_id", correlationID, "bytes_out", buf.Len())
	return buf.String(), nil
}

func emitValue(v docvalue.DocValue) (*yaml.Node, error) {
	switch v.Kind() {
	case docvalue.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}, nil
	case docvalue.KindBool:
		b, _ := v.AsBool()
		text := "false"
		if b {
			text = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: text}, nil
	case docvalue.KindInt:
		i, _ := v.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: formatInt(i)}, nil
	case docvalue.KindUInt:
		u, _ := v.AsUInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagUInt, Value: formatUint(u)}, nil
	case docvalue.KindInt64:
		i, _ := v.AsInt64()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagInt64, Value: formatInt64(i)}, nil
	case docvalue.KindUInt64:
		u, _ := v.AsUInt64()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagUInt64, Value: formatUint64(u)}, nil
	case docvalue.KindFloat:
		f, _ := v.AsFloat()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat32(f)}, nil
	case docvalue.KindDouble:
		d, _ := v.AsDouble()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagDouble, Value: formatFloat64(d)}, nil
	case docvalue.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}, nil
	case docvalue.KindArray:
		values, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, len(values))}
		for i, child := range values {
			c, err := emitValue(child)
			if err != nil {
				return nil, err
			}
			node.Content[i] = c
		}
		return node, nil
	case docvalue.KindHash:
		entries, _ := v.AsHash()
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(entries)*2)}
		for _, entry := range entries {
			c, err := emitValue(entry.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}, c)
		}
		return node, nil
	default:
		return nil, paramerr.NewInvalidData("unrecognised DocValue kind %s", v.Kind())
	}
}
