// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtag

import "github.com/windrift/paramtext/lib/paramvalue"

// Tag text forms, normative per the PARAM value model's text mapping.
const (
	UInt32       = "!u"
	FixedStr32   = "!str32"
	FixedStr64   = "!str64"
	FixedStr256  = "!str256"
	Vec2         = "!vec2"
	Vec3         = "!vec3"
	Vec4         = "!vec4"
	Color4       = "!color"
	Quat         = "!quat"
	Curve        = "!curve"
	BufferInt    = "!buffer_int"
	BufferF32    = "!buffer_f32"
	BufferU32    = "!buffer_u32"
	BufferBinary = "!buffer_binary"
)

// scalarTags maps the tags that apply to a scalar text node to the
// Kind they denote.
var scalarTags = map[string]paramvalue.Kind{
	UInt32:      paramvalue.KindUInt32,
	FixedStr32:  paramvalue.KindFixedStr32,
	FixedStr64:  paramvalue.KindFixedStr64,
	FixedStr256: paramvalue.KindFixedStr256,
}

// sequenceTags maps the tags that apply to a sequence text node to the
// Kind they denote.
var sequenceTags = map[string]paramvalue.Kind{
	Vec2:         paramvalue.KindVec2,
	Vec3:         paramvalue.KindVec3,
	Vec4:         paramvalue.KindVec4,
	Color4:       paramvalue.KindColor4,
	Quat:         paramvalue.KindQuat,
	Curve:        paramvalue.KindCurve,
	BufferInt:    paramvalue.KindBufferInt,
	BufferF32:    paramvalue.KindBufferF32,
	BufferU32:    paramvalue.KindBufferU32,
	BufferBinary: paramvalue.KindBufferBinary,
}

// kindTags is the reverse of scalarTags and sequenceTags, used by the
// Text Emitter. Kinds with no entry (Bool, Int, Float, String) emit
// untagged.
var kindTags map[paramvalue.Kind]string

func init() {
	kindTags = make(map[paramvalue.Kind]string, len(scalarTags)+len(sequenceTags))
	for tag, kind := range scalarTags {
		kindTags[kind] = tag
	}
	for tag, kind := range sequenceTags {
		kindTags[kind] = tag
	}
}

// LookupScalar reports the Kind denoted by tag when tag appears on a
// scalar text node, and whether tag is a recognised scalar tag at all.
// An unrecognised scalar tag is not an error at this layer: callers
// fall through to shape-based default scalar typing.
func LookupScalar(tag string) (paramvalue.Kind, bool) {
	kind, ok := scalarTags[tag]
	return kind, ok
}

// LookupSequence reports the Kind denoted by tag when tag appears on a
// sequence text node, and whether tag is a recognised sequence tag.
// Callers must treat an unrecognised tag on a sequence node as
// InvalidData — sequences have no untagged default, unlike scalars.
func LookupSequence(tag string) (paramvalue.Kind, bool) {
	kind, ok := sequenceTags[tag]
	return kind, ok
}

// TagFor returns the text tag for kind, and whether kind carries a
// tag at all. Bool, Int, Float, and String are untagged.
func TagFor(kind paramvalue.Kind) (string, bool) {
	tag, ok := kindTags[kind]
	return tag, ok
}

// IsSequenceKind reports whether kind is emitted as a sequence node
// rather than a scalar node.
func IsSequenceKind(kind paramvalue.Kind) bool {
	switch kind {
	case paramvalue.KindVec2, paramvalue.KindVec3, paramvalue.KindVec4,
		paramvalue.KindColor4, paramvalue.KindQuat, paramvalue.KindCurve,
		paramvalue.KindBufferInt, paramvalue.KindBufferF32,
		paramvalue.KindBufferU32, paramvalue.KindBufferBinary:
		return true
	default:
		return false
	}
}
