// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtext

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/windrift/paramtext/lib/nametable"
	"github.com/windrift/paramtext/lib/paramerr"
	"github.com/windrift/paramtext/lib/paramhash"
	"github.com/windrift/paramtext/lib/paramtag"
	"github.com/windrift/paramtext/lib/paramvalue"
)

// FromText parses a PARAM document from its structured text form.
func FromText(text string) (paramvalue.ParamDoc, error) {
	correlationID := uuid.New().String()
	slog.Debug("paramtext: parsing document", "correlation_id", correlationID, "bytes_in", len(text))

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		wrapped := paramerr.WrapInvalidData(err, "parsing PARAM text")
		slog.Debug("paramtext: parse failed", "correlation_id", correlationID, "error", wrapped)
		return paramvalue.ParamDoc{}, wrapped
	}
	if len(root.Content) != 1 {
		err := paramerr.NewInvalidData("expected exactly one top-level document node")
		slog.Debug("paramtext: parse failed", "correlation_id", correlationID, "error", err)
		return paramvalue.ParamDoc{}, err
	}

	extra := nametable.New()
	doc, err := parseDoc(root.Content[0], extra)
	if err != nil {
		slog.Debug("paramtext: parse failed", "correlation_id", correlationID, "error", err)
		return paramvalue.ParamDoc{}, err
	}
	slog.Debug("paramtext: parsed document", "correlation_id", correlationID)
	return doc, nil
}

// mapPair is one key/value node pair of a mapping, in document order.
type mapPair struct {
	key   *yaml.Node
	value *yaml.Node
}

// mapPairs returns the ordered key/value pairs of a mapping node, or
// InvalidData if node is not a mapping.
func mapPairs(node *yaml.Node) ([]mapPair, error) {
	if node.Kind != yaml.MappingNode {
		return nil, paramerr.NewInvalidData("expected a mapping, got a different node shape")
	}
	if len(node.Content)%2 != 0 {
		return nil, paramerr.NewInvalidData("malformed mapping node (odd content length)")
	}
	pairs := make([]mapPair, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		pairs = append(pairs, mapPair{key: node.Content[i], value: node.Content[i+1]})
	}
	return pairs, nil
}

// fieldMap extracts named fields from a mapping's pairs by literal key
// text, for the fixed ParamDoc/ParamList shapes.
func fieldMap(pairs []mapPair) map[string]*yaml.Node {
	fields := make(map[string]*yaml.Node, len(pairs))
	for _, p := range pairs {
		fields[p.key.Value] = p.value
	}
	return fields
}

func parseDoc(node *yaml.Node, extra *nametable.Table) (paramvalue.ParamDoc, error) {
	pairs, err := mapPairs(node)
	if err != nil {
		return paramvalue.ParamDoc{}, err
	}
	fields := fieldMap(pairs)

	versionNode, typeNode, rootNode := fields["version"], fields["type"], fields["param_root"]
	if versionNode == nil || typeNode == nil || rootNode == nil {
		return paramvalue.ParamDoc{}, paramerr.NewInvalidData("mapping does not match the ParamDoc shape (expected version, type, param_root)")
	}

	version, err := parseUint32Scalar(versionNode)
	if err != nil {
		return paramvalue.ParamDoc{}, paramerr.WrapInvalidData(err, "parsing ParamDoc.version")
	}
	if typeNode.Kind != yaml.ScalarNode || typeNode.Value == "" {
		return paramvalue.ParamDoc{}, paramerr.NewInvalidData("ParamDoc.type must be a non-empty string")
	}

	root, err := parseList(rootNode, extra)
	if err != nil {
		return paramvalue.ParamDoc{}, err
	}

	return paramvalue.ParamDoc{Version: version, Type: typeNode.Value, Root: root}, nil
}

// parseList parses a ParamList mapping. Reading never needs the
// ordinal/parent-hash context the Name Table's recovery heuristic
// uses -- that heuristic only runs when resolving a hash to a name
// for emission; here the hash is already given directly by the key
// scalar.
func parseList(node *yaml.Node, extra *nametable.Table) (paramvalue.ParamList, error) {
	pairs, err := mapPairs(node)
	if err != nil {
		return paramvalue.ParamList{}, err
	}
	fields := fieldMap(pairs)

	objectsNode, listsNode := fields["objects"], fields["lists"]
	if objectsNode == nil || listsNode == nil {
		return paramvalue.ParamList{}, paramerr.NewInvalidData("mapping does not match the ParamList shape (expected objects, lists)")
	}

	list := paramvalue.NewParamList()

	objectPairs, err := mapPairs(objectsNode)
	if err != nil {
		return paramvalue.ParamList{}, err
	}
	for _, pair := range objectPairs {
		hash, err := parseKeyScalar(pair.key)
		if err != nil {
			return paramvalue.ParamList{}, err
		}
		obj, err := parseObject(pair.value, extra)
		if err != nil {
			return paramvalue.ParamList{}, err
		}
		if !list.Objects.SetIfAbsent(hash, obj) {
			return paramvalue.ParamList{}, paramerr.NewInvalidData("duplicate object key %s", hash)
		}
	}

	listPairs, err := mapPairs(listsNode)
	if err != nil {
		return paramvalue.ParamList{}, err
	}
	for _, pair := range listPairs {
		hash, err := parseKeyScalar(pair.key)
		if err != nil {
			return paramvalue.ParamList{}, err
		}
		child, err := parseList(pair.value, extra)
		if err != nil {
			return paramvalue.ParamList{}, err
		}
		if !list.Lists.SetIfAbsent(hash, child) {
			return paramvalue.ParamList{}, paramerr.NewInvalidData("duplicate list key %s", hash)
		}
	}

	return list, nil
}

func parseObject(node *yaml.Node, extra *nametable.Table) (paramvalue.ParamObject, error) {
	pairs, err := mapPairs(node)
	if err != nil {
		return paramvalue.ParamObject{}, err
	}

	obj := paramvalue.NewParamObject()
	for _, pair := range pairs {
		hash, err := parseKeyScalar(pair.key)
		if err != nil {
			return paramvalue.ParamObject{}, err
		}
		param, err := parseParameter(pair.value)
		if err != nil {
			return paramvalue.ParamObject{}, err
		}
		if !obj.Params.SetIfAbsent(hash, param) {
			return paramvalue.ParamObject{}, paramerr.NewInvalidData("duplicate param key %s", hash)
		}

		switch param.Kind() {
		case paramvalue.KindString:
			s, _ := param.AsString()
			extra.AddReference(s)
		case paramvalue.KindFixedStr32:
			s, _ := param.AsFixedStr32()
			extra.AddReference(s)
		case paramvalue.KindFixedStr64:
			s, _ := param.AsFixedStr64()
			extra.AddReference(s)
		case paramvalue.KindFixedStr256:
			s, _ := param.AsFixedStr256()
			extra.AddReference(s)
		}
	}
	return obj, nil
}

// parseKeyScalar implements the PARAM key-scalar rule: an integer key
// scalar is the bare 32-bit hash; a string key scalar is CRC32(key).
func parseKeyScalar(node *yaml.Node) (paramhash.Hash, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, paramerr.NewInvalidData("map key is not a scalar")
	}
	switch node.Tag {
	case "!!int":
		v, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			return 0, paramerr.WrapInvalidData(err, "parsing integer map key %q", node.Value)
		}
		return paramhash.Hash(uint32(v)), nil
	case "!!str", "", "!!null":
		if node.Tag == "!!null" {
			return 0, paramerr.NewInvalidData("map key has an unsupported scalar shape")
		}
		return paramhash.Compute(node.Value), nil
	default:
		return 0, paramerr.NewInvalidData("map key has an unsupported scalar shape (tag %q)", node.Tag)
	}
}

func parseUint32Scalar(node *yaml.Node) (uint32, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, paramerr.NewInvalidData("expected an integer scalar")
	}
	v, err := strconv.ParseUint(node.Value, 0, 32)
	if err != nil {
		return 0, paramerr.WrapInvalidData(err, "parsing unsigned 32-bit integer %q", node.Value)
	}
	return uint32(v), nil
}

// parseParameter dispatches a Parameter's text node by (tag, shape)
// per §4.3/§4.4.
func parseParameter(node *yaml.Node) (paramvalue.Parameter, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return parseScalarParameter(node)
	case yaml.SequenceNode:
		return parseSequenceParameter(node)
	default:
		return paramvalue.Parameter{}, paramerr.NewInvalidData("unexpected node shape in a Parameter position")
	}
}

func parseScalarParameter(node *yaml.Node) (paramvalue.Parameter, error) {
	if kind, ok := paramtag.LookupScalar(node.Tag); ok {
		switch kind {
		case paramvalue.KindUInt32:
			v, err := strconv.ParseUint(node.Value, 0, 32)
			if err != nil {
				return paramvalue.Parameter{}, paramerr.WrapInvalidData(err, "parsing %s value %q", paramtag.UInt32, node.Value)
			}
			return paramvalue.NewUInt32(uint32(v)), nil
		case paramvalue.KindFixedStr32:
			return paramvalue.NewFixedStr32(node.Value)
		case paramvalue.KindFixedStr64:
			return paramvalue.NewFixedStr64(node.Value)
		case paramvalue.KindFixedStr256:
			return paramvalue.NewFixedStr256(node.Value)
		}
	}
	return scalarShape(node)
}

func parseSequenceParameter(node *yaml.Node) (paramvalue.Parameter, error) {
	kind, ok := paramtag.LookupSequence(node.Tag)
	if !ok {
		return paramvalue.Parameter{}, paramerr.NewInvalidData("unrecognised or missing tag %q on a sequence in a Parameter position", node.Tag)
	}

	switch kind {
	case paramvalue.KindVec2:
		floats, err := parseFloatChildren(node, 2)
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		return paramvalue.NewVec2(floats[0], floats[1]), nil
	case paramvalue.KindVec3:
		floats, err := parseFloatChildren(node, 3)
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		return paramvalue.NewVec3(floats[0], floats[1], floats[2]), nil
	case paramvalue.KindVec4:
		floats, err := parseFloatChildren(node, 4)
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		return paramvalue.NewVec4(floats[0], floats[1], floats[2], floats[3]), nil
	case paramvalue.KindColor4:
		floats, err := parseFloatChildren(node, 4)
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		return paramvalue.NewColor4(floats[0], floats[1], floats[2], floats[3]), nil
	case paramvalue.KindQuat:
		floats, err := parseFloatChildren(node, 4)
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		return paramvalue.NewQuat(floats[0], floats[1], floats[2], floats[3]), nil
	case paramvalue.KindCurve:
		return parseCurveParameter(node)
	case paramvalue.KindBufferInt:
		values := make([]int32, len(node.Content))
		for i, child := range node.Content {
			v, err := parseIntChild(child)
			if err != nil {
				return paramvalue.Parameter{}, err
			}
			values[i] = v
		}
		return paramvalue.NewBufferInt(values), nil
	case paramvalue.KindBufferF32:
		values := make([]float32, len(node.Content))
		for i, child := range node.Content {
			v, err := parseFloatChild(child)
			if err != nil {
				return paramvalue.Parameter{}, err
			}
			values[i] = v
		}
		return paramvalue.NewBufferF32(values), nil
	case paramvalue.KindBufferU32:
		values := make([]uint32, len(node.Content))
		for i, child := range node.Content {
			v, err := parseUint32Child(child)
			if err != nil {
				return paramvalue.Parameter{}, err
			}
			values[i] = v
		}
		return paramvalue.NewBufferU32(values), nil
	case paramvalue.KindBufferBinary:
		values := make([]byte, len(node.Content))
		for i, child := range node.Content {
			v, err := parseUint32Child(child)
			if err != nil {
				return paramvalue.Parameter{}, err
			}
			if v > 255 {
				return paramvalue.Parameter{}, paramerr.NewInvalidData("buffer_binary element %d out of byte range", v)
			}
			values[i] = byte(v)
		}
		return paramvalue.NewBufferBinary(values), nil
	default:
		return paramvalue.Parameter{}, paramerr.NewInvalidData("tag %q is not a sequence variant", node.Tag)
	}
}

func parseFloatChildren(node *yaml.Node, n int) ([]float32, error) {
	if len(node.Content) != n {
		return nil, paramerr.NewInvalidData("expected %d children, got %d", n, len(node.Content))
	}
	out := make([]float32, n)
	for i, child := range node.Content {
		v, err := parseFloatChild(child)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseCurveParameter(node *yaml.Node) (paramvalue.Parameter, error) {
	count := len(node.Content)
	if count != 32 && count != 64 && count != 96 && count != 128 {
		return paramvalue.Parameter{}, paramerr.NewInvalidData("curve sequence has %d children, must be 32, 64, 96, or 128", count)
	}

	n := count / 32
	curves := make([]paramvalue.Curve, n)
	for c := 0; c < n; c++ {
		base := c * 32
		a, err := parseUint32Child(node.Content[base])
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		b, err := parseUint32Child(node.Content[base+1])
		if err != nil {
			return paramvalue.Parameter{}, err
		}
		curve := paramvalue.Curve{A: a, B: b}
		for i := 0; i < 30; i++ {
			v, err := parseFloatChild(node.Content[base+2+i])
			if err != nil {
				return paramvalue.Parameter{}, err
			}
			curve.Floats[i] = v
		}
		curves[c] = curve
	}
	return paramvalue.NewCurve(curves)
}

func parseIntChild(node *yaml.Node) (int32, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, paramerr.NewInvalidData("expected a scalar element")
	}
	v, err := strconv.ParseInt(node.Value, 0, 32)
	if err != nil {
		return 0, paramerr.WrapInvalidData(err, "parsing integer element %q", node.Value)
	}
	return int32(v), nil
}

func parseUint32Child(node *yaml.Node) (uint32, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, paramerr.NewInvalidData("expected a scalar element")
	}
	v, err := strconv.ParseUint(node.Value, 0, 32)
	if err != nil {
		return 0, paramerr.WrapInvalidData(err, "parsing unsigned integer element %q", node.Value)
	}
	return uint32(v), nil
}

func parseFloatChild(node *yaml.Node) (float32, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, paramerr.NewInvalidData("expected a scalar element")
	}
	v, err := strconv.ParseFloat(node.Value, 32)
	if err != nil {
		return 0, paramerr.WrapInvalidData(err, "parsing float element %q", node.Value)
	}
	return float32(v), nil
}
