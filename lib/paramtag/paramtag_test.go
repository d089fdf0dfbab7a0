// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtag

import (
	"testing"

	"github.com/windrift/paramtext/lib/paramvalue"
)

func TestLookupScalarKnownTags(t *testing.T) {
	cases := map[string]paramvalue.Kind{
		UInt32:      paramvalue.KindUInt32,
		FixedStr32:  paramvalue.KindFixedStr32,
		FixedStr64:  paramvalue.KindFixedStr64,
		FixedStr256: paramvalue.KindFixedStr256,
	}
	for tag, want := range cases {
		got, ok := LookupScalar(tag)
		if !ok || got != want {
			t.Errorf("LookupScalar(%q) = %v, %v; want %v, true", tag, got, ok, want)
		}
	}
}

func TestLookupScalarUnknownTagFallsThrough(t *testing.T) {
	if _, ok := LookupScalar("!not_a_real_tag"); ok {
		t.Fatal("LookupScalar recognised a made-up tag")
	}
}

func TestLookupSequenceKnownTags(t *testing.T) {
	cases := map[string]paramvalue.Kind{
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
	for tag, want := range cases {
		got, ok := LookupSequence(tag)
		if !ok || got != want {
			t.Errorf("LookupSequence(%q) = %v, %v; want %v, true", tag, got, ok, want)
		}
	}
}

func TestLookupSequenceUnknownTag(t *testing.T) {
	if _, ok := LookupSequence("!not_a_real_tag"); ok {
		t.Fatal("LookupSequence recognised a made-up tag")
	}
}

func TestTagForRoundTrips(t *testing.T) {
	for tag, kind := range scalarTags {
		got, ok := TagFor(kind)
		if !ok || got != tag {
			t.Errorf("TagFor(%v) = %q, %v; want %q, true", kind, got, ok, tag)
		}
	}
	for tag, kind := range sequenceTags {
		got, ok := TagFor(kind)
		if !ok || got != tag {
			t.Errorf("TagFor(%v) = %q, %v; want %q, true", kind, got, ok, tag)
		}
	}
}

func TestTagForUntaggedKinds(t *testing.T) {
	for _, kind := range []paramvalue.Kind{
		paramvalue.KindBool, paramvalue.KindInt, paramvalue.KindFloat, paramvalue.KindString,
	} {
		if _, ok := TagFor(kind); ok {
			t.Errorf("TagFor(%v) reported a tag, want untagged", kind)
		}
	}
}

func TestIsSequenceKind(t *testing.T) {
	if !IsSequenceKind(paramvalue.KindCurve) {
		t.Error("IsSequenceKind(Curve) = false, want true")
	}
	if IsSequenceKind(paramvalue.KindFloat) {
		t.Error("IsSequenceKind(Float) = true, want false")
	}
}
