// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import (
	"errors"
	"testing"
)

func TestScalarConstructorsAndAccessors(t *testing.T) {
	if v, err := NewBool(true).AsBool(); err != nil || v != true {
		t.Fatalf("Bool round trip: %v, %v", v, err)
	}
	if v, err := NewInt(-7).AsInt(); err != nil || v != -7 {
		t.Fatalf("Int round trip: %v, %v", v, err)
	}
	if v, err := NewUInt32(7).AsUInt32(); err != nil || v != 7 {
		t.Fatalf("UInt32 round trip: %v, %v", v, err)
	}
	if v, err := NewFloat(3.5).AsFloat(); err != nil || v != 3.5 {
		t.Fatalf("Float round trip: %v, %v", v, err)
	}
	if v, err := NewString("hello").AsString(); err != nil || v != "hello" {
		t.Fatalf("String round trip: %v, %v", v, err)
	}
}

func TestFixedStringBounds(t *testing.T) {
	// 31 bytes accepted for FixedStr32, 32 bytes rejected.
	accepted := make([]byte, 31)
	for i := range accepted {
		accepted[i] = 'a'
	}
	if _, err := NewFixedStr32(string(accepted)); err != nil {
		t.Fatalf("31-byte FixedStr32 rejected: %v", err)
	}

	rejected := make([]byte, 32)
	for i := range rejected {
		rejected[i] = 'a'
	}
	if _, err := NewFixedStr32(string(rejected)); err == nil {
		t.Fatal("32-byte FixedStr32 accepted, want InvalidData")
	} else {
		var invalid *InvalidData
		if !errors.As(err, &invalid) {
			t.Fatalf("error is %T, want *InvalidData", err)
		}
	}
}

func TestFixedStringVariantDistinctFromString(t *testing.T) {
	fixed, err := NewFixedStr32("hello")
	if err != nil {
		t.Fatalf("NewFixedStr32: %v", err)
	}
	if _, err := fixed.AsString(); err == nil {
		t.Fatal("AsString on a FixedStr32 value succeeded, want TypeMismatch")
	}
	if v, err := fixed.AsFixedStr32(); err != nil || v != "hello" {
		t.Fatalf("AsFixedStr32: %v, %v", v, err)
	}
}

func TestVectorArity(t *testing.T) {
	v2 := NewVec2(1, 2)
	got, err := v2.AsVec2()
	if err != nil || got != [2]float32{1, 2} {
		t.Fatalf("Vec2 round trip: %v, %v", got, err)
	}
	if _, err := v2.AsVec3(); err == nil {
		t.Fatal("AsVec3 on a Vec2 value succeeded")
	}

	color := NewColor4(1, 0, 0, 1)
	gotColor, err := color.AsColor4()
	if err != nil || gotColor != [4]float32{1, 0, 0, 1} {
		t.Fatalf("Color4 round trip: %v, %v", gotColor, err)
	}
}

func TestCurveArity(t *testing.T) {
	curve := Curve{A: 1, B: 2}
	for i := range curve.Floats {
		curve.Floats[i] = float32(i)
	}

	for _, n := range []int{1, 2, 3, 4} {
		curves := make([]Curve, n)
		for i := range curves {
			curves[i] = curve
		}
		if _, err := NewCurve(curves); err != nil {
			t.Fatalf("NewCurve with %d segments rejected: %v", n, err)
		}
	}

	for _, n := range []int{0, 5} {
		curves := make([]Curve, n)
		if _, err := NewCurve(curves); err == nil {
			t.Fatalf("NewCurve with %d segments accepted, want InvalidData", n)
		}
	}
}

func TestCurveRoundTrip(t *testing.T) {
	first := Curve{A: 1, B: 2}
	second := Curve{A: 3, B: 4}
	for i := 0; i < 30; i++ {
		first.Floats[i] = float32(i)
		second.Floats[i] = float32(100 + i)
	}

	p, err := NewCurve([]Curve{first, second})
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	got, err := p.AsCurves()
	if err != nil {
		t.Fatalf("AsCurves: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(first) || !got[1].Equal(second) {
		t.Fatalf("AsCurves round trip mismatch: %+v", got)
	}
}

func TestBufferVariants(t *testing.T) {
	if v, err := NewBufferInt([]int32{1, 2, 3}).AsBufferInt(); err != nil || len(v) != 3 {
		t.Fatalf("BufferInt round trip: %v, %v", v, err)
	}
	if v, err := NewBufferF32([]float32{1.5, 2.5}).AsBufferF32(); err != nil || len(v) != 2 {
		t.Fatalf("BufferF32 round trip: %v, %v", v, err)
	}
	if v, err := NewBufferU32([]uint32{4, 5}).AsBufferU32(); err != nil || len(v) != 2 {
		t.Fatalf("BufferU32 round trip: %v, %v", v, err)
	}
	if v, err := NewBufferBinary([]byte{0xDE, 0xAD}).AsBufferBinary(); err != nil || len(v) != 2 {
		t.Fatalf("BufferBinary round trip: %v, %v", v, err)
	}
}

func TestBufferIsACopy(t *testing.T) {
	source := []int32{1, 2, 3}
	p := NewBufferInt(source)
	source[0] = 99

	got, err := p.AsBufferInt()
	if err != nil {
		t.Fatalf("AsBufferInt: %v", err)
	}
	if got[0] != 1 {
		t.Fatalf("Parameter aliased caller's backing slice: got[0] = %d, want 1", got[0])
	}

	got[1] = 42
	got2, _ := p.AsBufferInt()
	if got2[1] != 2 {
		t.Fatalf("AsBufferInt returned an aliased slice: got2[1] = %d, want 2", got2[1])
	}
}

func TestTypeMismatchCarriesKinds(t *testing.T) {
	_, err := NewBool(true).AsInt()
	var mismatch *TypeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("error is %T, want *TypeMismatch", err)
	}
	if mismatch.Want != KindInt.String() || mismatch.Got != KindBool.String() {
		t.Fatalf("TypeMismatch = %+v, want Want=%s Got=%s", mismatch, KindInt, KindBool)
	}
}

func TestEqual(t *testing.T) {
	a := NewFloat(3.5)
	b := NewFloat(3.5)
	c := NewFloat(4.5)
	d := NewInt(3)

	if !a.Equal(b) {
		t.Fatal("equal floats compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("unequal floats compared equal")
	}
	if a.Equal(d) {
		t.Fatal("different kinds compared equal")
	}
}

func TestEqualBuffers(t *testing.T) {
	a := NewBufferInt([]int32{1, 2, 3})
	b := NewBufferInt([]int32{1, 2, 3})
	c := NewBufferInt([]int32{1, 2, 4})

	if !a.Equal(b) {
		t.Fatal("equal int buffers compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("unequal int buffers compared equal")
	}
}
