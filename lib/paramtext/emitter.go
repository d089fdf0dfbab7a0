// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtext

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/nametable"
	"github.com/windrift/paramtext/lib/paramerr"
	"github.com/windrift/paramtext/lib/paramhash"
	"github.com/windrift/paramtext/lib/paramtag"
	"github.com/windrift/paramtext/lib/paramvalue"
)

// ToText emits doc as the structured text form described in §6. The
// extra Name Table used to resolve keys is built fresh from doc's own
// string-valued parameters, then composed with the process-wide
// default table.
func ToText(doc paramvalue.ParamDoc) (string, error) {
	correlationID := uuid.New().String()
	slog.Debug("paramtext: emitting document", "correlation_id", correlationID)

	extra := buildExtraTable(doc)
	node := emitDoc(doc, extra)

	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "emitting PARAM text")
		slog.Debug("paramtext: emit failed", "correlation_id", correlationID, "error", wrapped)
		return "", wrapped
	}
	if err := enc.Close(); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "emitting PARAM text")
		slog.Debug("paramtext: emit failed", "correlation_id", correlationID, "error", wrapped)
		return "", wrapped
	}
	slog.Debug("paramtext: emitted document", "correlation_id", correlationID, "bytes_out", buf.Len())
	return buf.String(), nil
}

// buildExtraTable seeds a per-document Name Table from every
// String/FixedStrN-valued parameter reachable from doc's root, the
// same population rule the Text Reader applies while parsing.
func buildExtraTable(doc paramvalue.ParamDoc) *nametable.Table {
	extra := nametable.New()
	collectStrings(doc.Root, extra)
	return extra
}

func collectStrings(list paramvalue.ParamList, extra *nametable.Table) {
	for _, entry := range list.Objects.Entries() {
		for _, paramEntry := range entry.Value.Params.Entries() {
			addStringReference(paramEntry.Value, extra)
		}
	}
	for _, entry := range list.Lists.Entries() {
		collectStrings(entry.Value, extra)
	}
}

func addStringReference(p paramvalue.Parameter, extra *nametable.Table) {
	switch p.Kind() {
	case paramvalue.KindString:
		s, _ := p.AsString()
		extra.AddReference(s)
	case paramvalue.KindFixedStr32:
		s, _ := p.AsFixedStr32()
		extra.AddReference(s)
	case paramvalue.KindFixedStr64:
		s, _ := p.AsFixedStr64()
		extra.AddReference(s)
	case paramvalue.KindFixedStr256:
		s, _ := p.AsFixedStr256()
		extra.AddReference(s)
	}
}

func emitDoc(doc paramvalue.ParamDoc, extra *nametable.Table) *yaml.Node {
	root := emitList(doc.Root, 0, paramhash.ParamRootHash, extra)
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!io",
		Content: []*yaml.Node{
			scalarNode("version", "!!str"), scalarNode(formatUint32(doc.Version), "!!int"),
			scalarNode("type", "!!str"), quotedScalarNode(doc.Type),
			scalarNode("param_root", "!!str"), root,
		},
	}
}

func emitList(list paramvalue.ParamList, ordinal int, parentHash paramhash.Hash, extra *nametable.Table) *yaml.Node {
	objectsNode := &yaml.Node{Kind: yaml.MappingNode}
	for i, entry := range list.Objects.Entries() {
		key := emitKey(entry.Key, i, parentHash, extra)
		objectsNode.Content = append(objectsNode.Content, key, emitObject(entry.Value, entry.Key, extra))
	}

	listsNode := &yaml.Node{Kind: yaml.MappingNode}
	for i, entry := range list.Lists.Entries() {
		key := emitKey(entry.Key, i, parentHash, extra)
		listsNode.Content = append(listsNode.Content, key, emitList(entry.Value, i, entry.Key, extra))
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!list",
		Content: []*yaml.Node{
			scalarNode("objects", "!!str"), objectsNode,
			scalarNode("lists", "!!str"), listsNode,
		},
	}
}

func emitObject(obj paramvalue.ParamObject, parentHash paramhash.Hash, extra *nametable.Table) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!obj"}
	for i, entry := range obj.Params.Entries() {
		key := emitKey(entry.Key, i, parentHash, extra)
		node.Content = append(node.Content, key, emitParameter(entry.Value))
	}
	return node
}

// emitKey resolves hash to a name via the extra table, falling back
// to the default table, falling back to the bare integer hash.
func emitKey(hash paramhash.Hash, ordinal int, parentHash paramhash.Hash, extra *nametable.Table) *yaml.Node {
	if name, ok := nametable.Resolve(extra, nametable.Default(), hash, ordinal, parentHash); ok {
		return scalarNode(name, "!!str")
	}
	return scalarNode(formatUint32(uint32(hash)), "!!int")
}

func emitParameter(p paramvalue.Parameter) *yaml.Node {
	switch p.Kind() {
	case paramvalue.KindBool:
		v, _ := p.AsBool()
		text := "false"
		if v {
			text = "true"
		}
		return scalarNode(text, "!!bool")
	case paramvalue.KindInt:
		v, _ := p.AsInt()
		return scalarNode(formatInt(v), "!!int")
	case paramvalue.KindUInt32:
		v, _ := p.AsUInt32()
		return taggedScalar(paramtag.UInt32, formatUint32(v))
	case paramvalue.KindFloat:
		v, _ := p.AsFloat()
		return scalarNode(formatFloat32(v), "!!float")
	case paramvalue.KindString:
		v, _ := p.AsString()
		return quotedScalarNode(v)
	case paramvalue.KindFixedStr32:
		v, _ := p.AsFixedStr32()
		return taggedQuotedScalar(paramtag.FixedStr32, v)
	case paramvalue.KindFixedStr64:
		v, _ := p.AsFixedStr64()
		return taggedQuotedScalar(paramtag.FixedStr64, v)
	case paramvalue.KindFixedStr256:
		v, _ := p.AsFixedStr256()
		return taggedQuotedScalar(paramtag.FixedStr256, v)
	case paramvalue.KindVec2:
		v, _ := p.AsVec2()
		return flowSequence(paramtag.Vec2, floatNodes(v[:]...))
	case paramvalue.KindVec3:
		v, _ := p.AsVec3()
		return flowSequence(paramtag.Vec3, floatNodes(v[:]...))
	case paramvalue.KindVec4:
		v, _ := p.AsVec4()
		return flowSequence(paramtag.Vec4, floatNodes(v[:]...))
	case paramvalue.KindColor4:
		v, _ := p.AsColor4()
		return flowSequence(paramtag.Color4, floatNodes(v[:]...))
	case paramvalue.KindQuat:
		v, _ := p.AsQuat()
		return flowSequence(paramtag.Quat, floatNodes(v[:]...))
	case paramvalue.KindCurve:
		curves, _ := p.AsCurves()
		return emitCurve(curves)
	case paramvalue.KindBufferInt:
		v, _ := p.AsBufferInt()
		children := make([]*yaml.Node, len(v))
		for i, x := range v {
			children[i] = scalarNode(formatInt(x), "!!int")
		}
		return flowSequence(paramtag.BufferInt, children)
	case paramvalue.KindBufferF32:
		v, _ := p.AsBufferF32()
		return flowSequence(paramtag.BufferF32, floatNodes(v...))
	case paramvalue.KindBufferU32:
		v, _ := p.AsBufferU32()
		children := make([]*yaml.Node, len(v))
		for i, x := range v {
			children[i] = scalarNode(formatUint32(x), "!!int")
		}
		return flowSequence(paramtag.BufferU32, children)
	case paramvalue.KindBufferBinary:
		v, _ := p.AsBufferBinary()
		children := make([]*yaml.Node, len(v))
		for i, x := range v {
			children[i] = scalarNode(formatUint32(uint32(x)), "!!int")
		}
		return flowSequence(paramtag.BufferBinary, children)
	default:
		return scalarNode("", "!!null")
	}
}

func emitCurve(curves []paramvalue.Curve) *yaml.Node {
	children := make([]*yaml.Node, 0, len(curves)*32)
	for _, curve := range curves {
		children = append(children, scalarNode(formatUint32(curve.A), "!!int"), scalarNode(formatUint32(curve.B), "!!int"))
		for _, f := range curve.Floats {
			children = append(children, scalarNode(formatFloat32(f), "!!float"))
		}
	}
	return flowSequence(paramtag.Curve, children)
}

func floatNodes(values ...float32) []*yaml.Node {
	nodes := make([]*yaml.Node, len(values))
	for i, v := range values {
		nodes[i] = scalarNode(formatFloat32(v), "!!float")
	}
	return nodes
}

func flowSequence(tag string, children []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: tag, Style: yaml.FlowStyle, Content: children}
}

func scalarNode(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func quotedScalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}

func taggedScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func taggedQuotedScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Style: yaml.DoubleQuotedStyle}
}
