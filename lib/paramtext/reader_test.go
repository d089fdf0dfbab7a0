// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramtext

import (
	"strings"
	"testing"

	"github.com/windrift/paramtext/lib/paramerr"
	"github.com/windrift/paramtext/lib/paramhash"
	"github.com/windrift/paramtext/lib/paramvalue"
)

func TestFromTextEmptyDocument(t *testing.T) {
	text := "!io\nversion: 0\ntype: \"xlink\"\nparam_root: !list\n  objects: {}\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if doc.Version != 0 || doc.Type != "xlink" {
		t.Fatalf("got version=%d type=%q", doc.Version, doc.Type)
	}
	if doc.Root.Objects.Len() != 0 || doc.Root.Lists.Len() != 0 {
		t.Fatalf("expected an empty root, got %d objects, %d lists", doc.Root.Objects.Len(), doc.Root.Lists.Len())
	}
}

func TestFromTextUInt32TagNotInt(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: !u 7\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	obj, ok := doc.Root.Objects.Get(paramhash.Compute("Enemy"))
	if !ok {
		t.Fatal("missing Enemy object")
	}
	param, ok := obj.Params.Get(paramhash.Compute("key"))
	if !ok {
		t.Fatal("missing key param")
	}
	if param.Kind() != paramvalue.KindUInt32 {
		t.Fatalf("got kind %s, want UInt32", param.Kind())
	}
	v, err := param.AsUInt32()
	if err != nil || v != 7 {
		t.Fatalf("AsUInt32() = %d, %v", v, err)
	}
}

func TestFromTextCurveSequence(t *testing.T) {
	var b strings.Builder
	b.WriteString("!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: !curve [1, 2")
	for i := 0; i < 30; i++ {
		b.WriteString(",0")
	}
	b.WriteString(", 3, 4")
	for i := 0; i < 30; i++ {
		b.WriteString(",100")
	}
	b.WriteString("]\n  lists: {}\n")

	doc, err := FromText(b.String())
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	obj, _ := doc.Root.Objects.Get(paramhash.Compute("Enemy"))
	param, _ := obj.Params.Get(paramhash.Compute("key"))
	if param.Kind() != paramvalue.KindCurve {
		t.Fatalf("got kind %s, want Curve", param.Kind())
	}
	curves, err := param.AsCurves()
	if err != nil {
		t.Fatalf("AsCurves: %v", err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	if curves[0].A != 1 || curves[0].B != 2 || curves[1].A != 3 || curves[1].B != 4 {
		t.Fatalf("unexpected curve headers: %+v", curves)
	}
}

func TestFromTextFixedStr32RoundTrip(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: !str32 \"hello\"\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	obj, _ := doc.Root.Objects.Get(paramhash.Compute("Enemy"))
	param, _ := obj.Params.Get(paramhash.Compute("key"))
	v, err := param.AsFixedStr32()
	if err != nil || v != "hello" {
		t.Fatalf("AsFixedStr32() = %q, %v", v, err)
	}
}

func TestFromTextFixedStr32RejectsThirtyTwoBytes(t *testing.T) {
	long := strings.Repeat("a", 32)
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: !str32 \"" + long + "\"\n  lists: {}\n"
	_, err := FromText(text)
	if err == nil {
		t.Fatal("expected InvalidData for a 32-byte FixedStr32 value")
	}
	var invalid *paramerr.InvalidData
	if !asInvalidData(err, &invalid) {
		t.Fatalf("expected *paramerr.InvalidData, got %T: %v", err, err)
	}
}

func TestFromTextQuotedNumericStringStaysString(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: \"123\"\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	obj, _ := doc.Root.Objects.Get(paramhash.Compute("Enemy"))
	param, _ := obj.Params.Get(paramhash.Compute("key"))
	if param.Kind() != paramvalue.KindString {
		t.Fatalf("got kind %s, want String", param.Kind())
	}
	v, err := param.AsString()
	if err != nil || v != "123" {
		t.Fatalf("AsString() = %q, %v", v, err)
	}
}

func TestFromTextUnquotedIntegerBecomesInt(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: 123\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	obj, _ := doc.Root.Objects.Get(paramhash.Compute("Enemy"))
	param, _ := obj.Params.Get(paramhash.Compute("key"))
	if param.Kind() != paramvalue.KindInt {
		t.Fatalf("got kind %s, want Int", param.Kind())
	}
}

func TestFromTextBareIntegerKey(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    305419896: !obj\n      key: 1\n  lists: {}\n"
	doc, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if !doc.Root.Objects.Has(paramhash.Hash(305419896)) {
		t.Fatal("expected a bare-integer object key of 305419896")
	}
}

func TestFromTextRejectsDuplicateObjectKey(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: 1\n    Enemy: !obj\n      key: 2\n  lists: {}\n"
	_, err := FromText(text)
	if err == nil {
		t.Fatal("expected InvalidData for a duplicate object key")
	}
}

func TestFromTextRejectsMissingDocFields(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\n"
	_, err := FromText(text)
	if err == nil {
		t.Fatal("expected InvalidData for a missing param_root field")
	}
}

func TestFromTextRejectsNullScalarParameter(t *testing.T) {
	text := "!io\nversion: 1\ntype: \"t\"\nparam_root: !list\n  objects:\n    Enemy: !obj\n      key: null\n  lists: {}\n"
	_, err := FromText(text)
	if err == nil {
		t.Fatal("expected InvalidData for a null scalar in a Parameter position")
	}
}

func asInvalidData(err error, target **paramerr.InvalidData) bool {
	for err != nil {
		if v, ok := err.(*paramerr.InvalidData); ok {
			*target = v
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
