// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docvalue

import (
	"sort"

	"github.com/windrift/paramtext/lib/paramerr"
)

// HashEntry is one key/value pair of a Hash DocValue.
type HashEntry struct {
	Key   string
	Value DocValue
}

// DocValue is a single node of a DOC document tree. The zero value is
// Null.
type DocValue struct {
	kind Kind

	b   bool
	i32 int32
	u32 uint32
	i64 int64
	u64 uint64
	f32 float32
	f64 float64
	s   string

	arr  []DocValue
	hash []HashEntry
}

// Kind reports the variant held by v.
func (v DocValue) Kind() Kind {
	return v.kind
}

// --- constructors ---

func Null() DocValue {
	return DocValue{kind: KindNull}
}

func NewString(v string) DocValue {
	return DocValue{kind: KindString, s: v}
}

func NewBool(v bool) DocValue {
	return DocValue{kind: KindBool, b: v}
}

func NewInt(v int32) DocValue {
	return DocValue{kind: KindInt, i32: v}
}

func NewUInt(v uint32) DocValue {
	return DocValue{kind: KindUInt, u32: v}
}

func NewInt64(v int64) DocValue {
	return DocValue{kind: KindInt64, i64: v}
}

func NewUInt64(v uint64) DocValue {
	return DocValue{kind: KindUInt64, u64: v}
}

func NewFloat(v float32) DocValue {
	return DocValue{kind: KindFloat, f32: v}
}

func NewDouble(v float64) DocValue {
	return DocValue{kind: KindDouble, f64: v}
}

// NewArray builds an Array DocValue. The slice is copied.
func NewArray(values []DocValue) DocValue {
	return DocValue{kind: KindArray, arr: append([]DocValue(nil), values...)}
}

// NewHash builds a Hash DocValue, sorting entries into canonical
// byte-lexicographic key order. A duplicate key is InvalidData.
func NewHash(entries []HashEntry) (DocValue, error) {
	sorted := append([]HashEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return DocValue{}, paramerr.NewInvalidData("duplicate hash key %q", sorted[i].Key)
		}
	}
	return DocValue{kind: KindHash, hash: sorted}, nil
}

// --- accessors ---

func (v DocValue) IsNull() bool {
	return v.kind == KindNull
}

func (v DocValue) AsString() (string, error) {
	if v.kind != KindString {
		return "", paramerr.NewTypeMismatch(KindString.String(), v.kind.String())
	}
	return v.s, nil
}

func (v DocValue) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, paramerr.NewTypeMismatch(KindBool.String(), v.kind.String())
	}
	return v.b, nil
}

func (v DocValue) AsInt() (int32, error) {
	if v.kind != KindInt {
		return 0, paramerr.NewTypeMismatch(KindInt.String(), v.kind.String())
	}
	return v.i32, nil
}

func (v DocValue) AsUInt() (uint32, error) {
	if v.kind != KindUInt {
		return 0, paramerr.NewTypeMismatch(KindUInt.String(), v.kind.String())
	}
	return v.u32, nil
}

func (v DocValue) AsInt64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, paramerr.NewTypeMismatch(KindInt64.String(), v.kind.String())
	}
	return v.i64, nil
}

func (v DocValue) AsUInt64() (uint64, error) {
	if v.kind != KindUInt64 {
		return 0, paramerr.NewTypeMismatch(KindUInt64.String(), v.kind.String())
	}
	return v.u64, nil
}

func (v DocValue) AsFloat() (float32, error) {
	if v.kind != KindFloat {
		return 0, paramerr.NewTypeMismatch(KindFloat.String(), v.kind.String())
	}
	return v.f32, nil
}

func (v DocValue) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, paramerr.NewTypeMismatch(KindDouble.String(), v.kind.String())
	}
	return v.f64, nil
}

// AsArray returns a copy of the array's elements.
func (v DocValue) AsArray() ([]DocValue, error) {
	if v.kind != KindArray {
		return nil, paramerr.NewTypeMismatch(KindArray.String(), v.kind.String())
	}
	return append([]DocValue(nil), v.arr...), nil
}

// AsHash returns a copy of the hash's entries, in canonical
// byte-lexicographic key order.
func (v DocValue) AsHash() ([]HashEntry, error) {
	if v.kind != KindHash {
		return nil, paramerr.NewTypeMismatch(KindHash.String(), v.kind.String())
	}
	return append([]HashEntry(nil), v.hash...), nil
}

// Get returns the value under key in a Hash DocValue, and whether it
// was present.
func (v DocValue) Get(key string) (DocValue, bool) {
	if v.kind != KindHash {
		return DocValue{}, false
	}
	i := sort.Search(len(v.hash), func(i int) bool { return v.hash[i].Key >= key })
	if i < len(v.hash) && v.hash[i].Key == key {
		return v.hash[i].Value, true
	}
	return DocValue{}, false
}

// Equal reports whether v and other describe the same value, variant
// and content, recursively.
func (v DocValue) Equal(other DocValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.s == other.s
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i32 == other.i32
	case KindUInt:
		return v.u32 == other.u32
	case KindInt64:
		return v.i64 == other.i64
	case KindUInt64:
		return v.u64 == other.u64
	case KindFloat:
		return v.f32 == other.f32
	case KindDouble:
		return v.f64 == other.f64
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindHash:
		if len(v.hash) != len(other.hash) {
			return false
		}
		for i := range v.hash {
			if v.hash[i].Key != other.hash[i].Key || !v.hash[i].Value.Equal(other.hash[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
