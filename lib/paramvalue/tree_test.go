// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import (
	"testing"

	"github.com/windrift/paramtext/lib/paramhash"
)

func TestParamObjectEqual(t *testing.T) {
	a := NewParamObject()
	a.Params.Set(paramhash.Compute("Speed"), NewFloat(3.5))

	b := NewParamObject()
	b.Params.Set(paramhash.Compute("Speed"), NewFloat(3.5))

	if !a.Equal(b) {
		t.Fatal("structurally identical ParamObjects compared unequal")
	}

	c := NewParamObject()
	c.Params.Set(paramhash.Compute("Speed"), NewFloat(4.0))
	if a.Equal(c) {
		t.Fatal("differing ParamObjects compared equal")
	}
}

func TestParamObjectOrderMatters(t *testing.T) {
	a := NewParamObject()
	a.Params.Set(paramhash.Compute("A"), NewInt(1))
	a.Params.Set(paramhash.Compute("B"), NewInt(2))

	b := NewParamObject()
	b.Params.Set(paramhash.Compute("B"), NewInt(2))
	b.Params.Set(paramhash.Compute("A"), NewInt(1))

	if a.Equal(b) {
		t.Fatal("ParamObjects with different insertion order compared equal")
	}
}

func TestParamListNestingAndEqual(t *testing.T) {
	inner := NewParamObject()
	inner.Params.Set(paramhash.Compute("Speed"), NewFloat(3.5))

	outer := NewParamList()
	outer.Objects.Set(paramhash.Compute("Enemy"), inner)

	child := NewParamList()
	outer.Lists.Set(paramhash.Compute("Children"), child)

	other := NewParamList()
	innerCopy := NewParamObject()
	innerCopy.Params.Set(paramhash.Compute("Speed"), NewFloat(3.5))
	other.Objects.Set(paramhash.Compute("Enemy"), innerCopy)
	other.Lists.Set(paramhash.Compute("Children"), NewParamList())

	if !outer.Equal(other) {
		t.Fatal("structurally identical ParamLists compared unequal")
	}
}

func TestParamDocEqual(t *testing.T) {
	a := ParamDoc{Version: 0, Type: "xlink", Root: NewParamList()}
	b := ParamDoc{Version: 0, Type: "xlink", Root: NewParamList()}
	if !a.Equal(b) {
		t.Fatal("empty ParamDocs with matching version/type compared unequal")
	}

	c := ParamDoc{Version: 1, Type: "xlink", Root: NewParamList()}
	if a.Equal(c) {
		t.Fatal("ParamDocs with differing version compared equal")
	}
}
