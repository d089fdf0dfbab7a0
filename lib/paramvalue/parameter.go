// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import "bytes"

// Parameter is a single PARAM leaf value. The zero value is not valid;
// construct one with a New* function.
type Parameter struct {
	kind Kind

	b   bool
	i   int32
	u32 uint32
	f   float32
	s   string // String, FixedStr32/64/256

	vec [4]float32 // Vec2/3/4 (leading N entries), Color4, Quat

	curves []Curve

	bufInt []int32
	bufF32 []float32
	bufU32 []uint32
	bufBin []byte
}

// Kind reports the variant held by p.
func (p Parameter) Kind() Kind {
	return p.kind
}

// --- constructors ---

func NewBool(v bool) Parameter {
	return Parameter{kind: KindBool, b: v}
}

func NewInt(v int32) Parameter {
	return Parameter{kind: KindInt, i: v}
}

func NewUInt32(v uint32) Parameter {
	return Parameter{kind: KindUInt32, u32: v}
}

func NewFloat(v float32) Parameter {
	return Parameter{kind: KindFloat, f: v}
}

func NewString(v string) Parameter {
	return Parameter{kind: KindString, s: v}
}

func NewFixedStr32(v string) (Parameter, error) {
	return newFixedStr(KindFixedStr32, v)
}

func NewFixedStr64(v string) (Parameter, error) {
	return newFixedStr(KindFixedStr64, v)
}

func NewFixedStr256(v string) (Parameter, error) {
	return newFixedStr(KindFixedStr256, v)
}

func newFixedStr(kind Kind, v string) (Parameter, error) {
	bound, _ := fixedStrBound(kind)
	if len(v) >= bound {
		return Parameter{}, NewInvalidData("%s value %q is %d bytes, must be strictly less than %d", kind, v, len(v), bound)
	}
	return Parameter{kind: kind, s: v}, nil
}

func NewVec2(x, y float32) Parameter {
	return Parameter{kind: KindVec2, vec: [4]float32{x, y}}
}

func NewVec3(x, y, z float32) Parameter {
	return Parameter{kind: KindVec3, vec: [4]float32{x, y, z}}
}

func NewVec4(x, y, z, w float32) Parameter {
	return Parameter{kind: KindVec4, vec: [4]float32{x, y, z, w}}
}

func NewColor4(r, g, b, a float32) Parameter {
	return Parameter{kind: KindColor4, vec: [4]float32{r, g, b, a}}
}

func NewQuat(x, y, z, w float32) Parameter {
	return Parameter{kind: KindQuat, vec: [4]float32{x, y, z, w}}
}

// NewCurve builds a Curve Parameter from 1 to 4 curve segments. Any
// other count is InvalidData.
func NewCurve(curves []Curve) (Parameter, error) {
	if len(curves) < 1 || len(curves) > 4 {
		return Parameter{}, NewInvalidData("curve parameter has %d segments, must be 1-4", len(curves))
	}
	cp := make([]Curve, len(curves))
	copy(cp, curves)
	return Parameter{kind: KindCurve, curves: cp}, nil
}

func NewBufferInt(values []int32) Parameter {
	return Parameter{kind: KindBufferInt, bufInt: append([]int32(nil), values...)}
}

func NewBufferF32(values []float32) Parameter {
	return Parameter{kind: KindBufferF32, bufF32: append([]float32(nil), values...)}
}

func NewBufferU32(values []uint32) Parameter {
	return Parameter{kind: KindBufferU32, bufU32: append([]uint32(nil), values...)}
}

func NewBufferBinary(values []byte) Parameter {
	return Parameter{kind: KindBufferBinary, bufBin: append([]byte(nil), values...)}
}

// --- accessors ---

func (p Parameter) AsBool() (bool, error) {
	if p.kind != KindBool {
		return false, newTypeMismatch(KindBool, p.kind)
	}
	return p.b, nil
}

func (p Parameter) AsInt() (int32, error) {
	if p.kind != KindInt {
		return 0, newTypeMismatch(KindInt, p.kind)
	}
	return p.i, nil
}

func (p Parameter) AsUInt32() (uint32, error) {
	if p.kind != KindUInt32 {
		return 0, newTypeMismatch(KindUInt32, p.kind)
	}
	return p.u32, nil
}

func (p Parameter) AsFloat() (float32, error) {
	if p.kind != KindFloat {
		return 0, newTypeMismatch(KindFloat, p.kind)
	}
	return p.f, nil
}

func (p Parameter) AsString() (string, error) {
	if p.kind != KindString {
		return "", newTypeMismatch(KindString, p.kind)
	}
	return p.s, nil
}

func (p Parameter) AsFixedStr32() (string, error) {
	if p.kind != KindFixedStr32 {
		return "", newTypeMismatch(KindFixedStr32, p.kind)
	}
	return p.s, nil
}

func (p Parameter) AsFixedStr64() (string, error) {
	if p.kind != KindFixedStr64 {
		return "", newTypeMismatch(KindFixedStr64, p.kind)
	}
	return p.s, nil
}

func (p Parameter) AsFixedStr256() (string, error) {
	if p.kind != KindFixedStr256 {
		return "", newTypeMismatch(KindFixedStr256, p.kind)
	}
	return p.s, nil
}

func (p Parameter) AsVec2() ([2]float32, error) {
	if p.kind != KindVec2 {
		return [2]float32{}, newTypeMismatch(KindVec2, p.kind)
	}
	return [2]float32{p.vec[0], p.vec[1]}, nil
}

func (p Parameter) AsVec3() ([3]float32, error) {
	if p.kind != KindVec3 {
		return [3]float32{}, newTypeMismatch(KindVec3, p.kind)
	}
	return [3]float32{p.vec[0], p.vec[1], p.vec[2]}, nil
}

func (p Parameter) AsVec4() ([4]float32, error) {
	if p.kind != KindVec4 {
		return [4]float32{}, newTypeMismatch(KindVec4, p.kind)
	}
	return p.vec, nil
}

func (p Parameter) AsColor4() ([4]float32, error) {
	if p.kind != KindColor4 {
		return [4]float32{}, newTypeMismatch(KindColor4, p.kind)
	}
	return p.vec, nil
}

func (p Parameter) AsQuat() ([4]float32, error) {
	if p.kind != KindQuat {
		return [4]float32{}, newTypeMismatch(KindQuat, p.kind)
	}
	return p.vec, nil
}

// AsCurves returns the 1-4 curve segments of a Curve Parameter. The
// returned slice is a copy; mutating it does not affect p.
func (p Parameter) AsCurves() ([]Curve, error) {
	if p.kind != KindCurve {
		return nil, newTypeMismatch(KindCurve, p.kind)
	}
	cp := make([]Curve, len(p.curves))
	copy(cp, p.curves)
	return cp, nil
}

func (p Parameter) AsBufferInt() ([]int32, error) {
	if p.kind != KindBufferInt {
		return nil, newTypeMismatch(KindBufferInt, p.kind)
	}
	return append([]int32(nil), p.bufInt...), nil
}

func (p Parameter) AsBufferF32() ([]float32, error) {
	if p.kind != KindBufferF32 {
		return nil, newTypeMismatch(KindBufferF32, p.kind)
	}
	return append([]float32(nil), p.bufF32...), nil
}

func (p Parameter) AsBufferU32() ([]uint32, error) {
	if p.kind != KindBufferU32 {
		return nil, newTypeMismatch(KindBufferU32, p.kind)
	}
	return append([]uint32(nil), p.bufU32...), nil
}

func (p Parameter) AsBufferBinary() ([]byte, error) {
	if p.kind != KindBufferBinary {
		return nil, newTypeMismatch(KindBufferBinary, p.kind)
	}
	return append([]byte(nil), p.bufBin...), nil
}

// Equal reports whether p and other hold the same variant and value.
func (p Parameter) Equal(other Parameter) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case KindBool:
		return p.b == other.b
	case KindInt:
		return p.i == other.i
	case KindUInt32:
		return p.u32 == other.u32
	case KindFloat:
		return p.f == other.f
	case KindString, KindFixedStr32, KindFixedStr64, KindFixedStr256:
		return p.s == other.s
	case KindVec2, KindVec3, KindVec4, KindColor4, KindQuat:
		n, _ := vecArity(p.kind)
		for i := 0; i < n; i++ {
			if p.vec[i] != other.vec[i] {
				return false
			}
		}
		return true
	case KindCurve:
		if len(p.curves) != len(other.curves) {
			return false
		}
		for i := range p.curves {
			if !p.curves[i].Equal(other.curves[i]) {
				return false
			}
		}
		return true
	case KindBufferInt:
		return intSliceEqual(p.bufInt, other.bufInt)
	case KindBufferF32:
		return float32SliceEqual(p.bufF32, other.bufF32)
	case KindBufferU32:
		return uint32SliceEqual(p.bufU32, other.bufU32)
	case KindBufferBinary:
		return bytes.Equal(p.bufBin, other.bufBin)
	default:
		return false
	}
}

func intSliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func float32SliceEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func uint32SliceEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
