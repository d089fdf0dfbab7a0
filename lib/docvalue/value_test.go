// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docvalue

import (
	"errors"
	"testing"

	"github.com/windrift/paramtext/lib/paramerr"
)

func TestScalarConstructorsAndAccessors(t *testing.T) {
	if v, err := NewString("hi").AsString(); err != nil || v != "hi" {
		t.Fatalf("String round trip: %v, %v", v, err)
	}
	if v, err := NewBool(true).AsBool(); err != nil || v != true {
		t.Fatalf("Bool round trip: %v, %v", v, err)
	}
	if v, err := NewInt(-1).AsInt(); err != nil || v != -1 {
		t.Fatalf("Int round trip: %v, %v", v, err)
	}
	if v, err := NewUInt(1).AsUInt(); err != nil || v != 1 {
		t.Fatalf("UInt round trip: %v, %v", v, err)
	}
	if v, err := NewInt64(-1).AsInt64(); err != nil || v != -1 {
		t.Fatalf("Int64 round trip: %v, %v", v, err)
	}
	if v, err := NewUInt64(1).AsUInt64(); err != nil || v != 1 {
		t.Fatalf("UInt64 round trip: %v, %v", v, err)
	}
	if v, err := NewFloat(1.5).AsFloat(); err != nil || v != 1.5 {
		t.Fatalf("Float round trip: %v, %v", v, err)
	}
	if v, err := NewDouble(1.5).AsDouble(); err != nil || v != 1.5 {
		t.Fatalf("Double round trip: %v, %v", v, err)
	}
	if !Null().IsNull() {
		t.Fatal("Null().IsNull() = false")
	}
}

func TestTypeMismatch(t *testing.T) {
	_, err := NewInt(1).AsString()
	var mismatch *paramerr.TypeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("error is %T, want *paramerr.TypeMismatch", err)
	}
	if mismatch.Want != KindString.String() || mismatch.Got != KindInt.String() {
		t.Fatalf("TypeMismatch = %+v", mismatch)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	arr := NewArray([]DocValue{NewInt(1), NewString("x"), Null()})
	got, err := arr.AsArray()
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if len(got) != 3 || !got[0].Equal(NewInt(1)) || !got[1].Equal(NewString("x")) || !got[2].IsNull() {
		t.Fatalf("AsArray = %+v", got)
	}
}

func TestHashSortsLexicographically(t *testing.T) {
	hash, err := NewHash([]HashEntry{
		{Key: "zebra", Value: NewInt(1)},
		{Key: "alpha", Value: NewInt(2)},
		{Key: "mango", Value: NewInt(3)},
	})
	if err != nil {
		t.Fatalf("NewHash: %v", err)
	}
	entries, err := hash.AsHash()
	if err != nil {
		t.Fatalf("AsHash: %v", err)
	}
	want := []string{"alpha", "mango", "zebra"}
	for i, key := range want {
		if entries[i].Key != key {
			t.Fatalf("AsHash()[%d].Key = %q, want %q", i, entries[i].Key, key)
		}
	}
}

func TestHashRejectsDuplicateKeys(t *testing.T) {
	_, err := NewHash([]HashEntry{
		{Key: "a", Value: NewInt(1)},
		{Key: "a", Value: NewInt(2)},
	})
	if err == nil {
		t.Fatal("NewHash accepted duplicate keys")
	}
	var invalid *paramerr.InvalidData
	if !errors.As(err, &invalid) {
		t.Fatalf("error is %T, want *paramerr.InvalidData", err)
	}
}

func TestHashGet(t *testing.T) {
	hash, err := NewHash([]HashEntry{
		{Key: "a", Value: NewInt(1)},
		{Key: "b", Value: NewInt(2)},
	})
	if err != nil {
		t.Fatalf("NewHash: %v", err)
	}
	v, ok := hash.Get("b")
	if !ok {
		t.Fatal("Get(b) not found")
	}
	if got, _ := v.AsInt(); got != 2 {
		t.Fatalf("Get(b) = %d, want 2", got)
	}
	if _, ok := hash.Get("missing"); ok {
		t.Fatal("Get(missing) found a value")
	}
}

func TestEqualNestedStructures(t *testing.T) {
	a, _ := NewHash([]HashEntry{{Key: "k", Value: NewArray([]DocValue{NewInt(1), NewInt(2)})}})
	b, _ := NewHash([]HashEntry{{Key: "k", Value: NewArray([]DocValue{NewInt(1), NewInt(2)})}})
	c, _ := NewHash([]HashEntry{{Key: "k", Value: NewArray([]DocValue{NewInt(1), NewInt(3)})}})

	if !a.Equal(b) {
		t.Fatal("structurally identical hashes compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("differing hashes compared equal")
	}
}
