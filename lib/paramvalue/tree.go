// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import (
	"github.com/windrift/paramtext/lib/orderedmap"
	"github.com/windrift/paramtext/lib/paramhash"
)

// ParamObject is an ordered hash→Parameter mapping. Every entry in a
// ParamObject is a leaf Parameter; there is no nesting within an
// object.
type ParamObject struct {
	Params *orderedmap.Map[paramhash.Hash, Parameter]
}

// NewParamObject returns an empty ParamObject.
func NewParamObject() ParamObject {
	return ParamObject{Params: orderedmap.New[paramhash.Hash, Parameter]()}
}

// Equal reports whether o and other have the same entries in the same
// order.
func (o ParamObject) Equal(other ParamObject) bool {
	a, b := o.Params.Entries(), other.Params.Entries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// ParamList is an ordered pair of hash→ParamObject and hash→ParamList
// mappings, the recursive branch node of a PARAM tree.
type ParamList struct {
	Objects *orderedmap.Map[paramhash.Hash, ParamObject]
	Lists   *orderedmap.Map[paramhash.Hash, ParamList]
}

// NewParamList returns an empty ParamList.
func NewParamList() ParamList {
	return ParamList{
		Objects: orderedmap.New[paramhash.Hash, ParamObject](),
		Lists:   orderedmap.New[paramhash.Hash, ParamList](),
	}
}

// Equal reports whether l and other have the same objects and lists,
// in the same order, recursively.
func (l ParamList) Equal(other ParamList) bool {
	objA, objB := l.Objects.Entries(), other.Objects.Entries()
	if len(objA) != len(objB) {
		return false
	}
	for i := range objA {
		if objA[i].Key != objB[i].Key || !objA[i].Value.Equal(objB[i].Value) {
			return false
		}
	}

	listA, listB := l.Lists.Entries(), other.Lists.Entries()
	if len(listA) != len(listB) {
		return false
	}
	for i := range listA {
		if listA[i].Key != listB[i].Key || !listA[i].Value.Equal(listB[i].Value) {
			return false
		}
	}
	return true
}

// ParamDoc is a complete PARAM document: a format version, an
// application-defined document type string, and a root ParamList.
type ParamDoc struct {
	Version uint32
	Type    string
	Root    ParamList
}

// Equal reports whether d and other describe the same document.
func (d ParamDoc) Equal(other ParamDoc) bool {
	return d.Version == other.Version && d.Type == other.Type && d.Root.Equal(other.Root)
}
