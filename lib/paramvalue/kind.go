// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

// Kind discriminates the variant held by a Parameter.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindUInt32
	KindFloat
	KindString
	KindFixedStr32
	KindFixedStr64
	KindFixedStr256
	KindVec2
	KindVec3
	KindVec4
	KindColor4
	KindQuat
	KindCurve
	KindBufferInt
	KindBufferF32
	KindBufferU32
	KindBufferBinary
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUInt32:
		return "uint32"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindFixedStr32:
		return "fixed_str32"
	case KindFixedStr64:
		return "fixed_str64"
	case KindFixedStr256:
		return "fixed_str256"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindColor4:
		return "color4"
	case KindQuat:
		return "quat"
	case KindCurve:
		return "curve"
	case KindBufferInt:
		return "buffer_int"
	case KindBufferF32:
		return "buffer_f32"
	case KindBufferU32:
		return "buffer_u32"
	case KindBufferBinary:
		return "buffer_binary"
	default:
		return "unknown"
	}
}

// fixedStrBound returns the byte bound N for a fixed-string kind (the
// value's UTF-8 length must be strictly less than N), and false if k
// is not a fixed-string kind.
func fixedStrBound(k Kind) (int, bool) {
	switch k {
	case KindFixedStr32:
		return 32, true
	case KindFixedStr64:
		return 64, true
	case KindFixedStr256:
		return 256, true
	default:
		return 0, false
	}
}

// vecArity returns the fixed child count for a vector-shaped kind, and
// false if k is not vector-shaped.
func vecArity(k Kind) (int, bool) {
	switch k {
	case KindVec2:
		return 2, true
	case KindVec3:
		return 3, true
	case KindVec4:
		return 4, true
	case KindColor4, KindQuat:
		return 4, true
	default:
		return 0, false
	}
}
