// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nametable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/windrift/paramtext/lib/paramhash"
)

// Table is a hash→name resolver: a set of known names, a memoization
// cache of names recovered through the heuristic steps, and
// (optionally, for the default table) a list of numbered name
// templates. The zero value is not usable; construct one with [New].
type Table struct {
	mu              sync.Mutex
	known           map[paramhash.Hash]string
	owned           map[paramhash.Hash]string
	templates       []string
	disableRecovery bool
}

// New returns an empty Table with no numbered templates. Per-document
// extra tables are built this way.
func New() *Table {
	return &Table{
		known: make(map[paramhash.Hash]string),
		owned: make(map[paramhash.Hash]string),
	}
}

// AddReference records (CRC32(name), name) as a known name.
func (t *Table) AddReference(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.known[paramhash.Compute(name)] = name
}

// setTemplates installs the numbered name templates used by step 4 of
// the lookup algorithm. Only the default table carries templates.
func (t *Table) setTemplates(templates []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.templates = templates
}

// SetDisableRecovery controls whether steps 3-4 of the lookup algorithm
// (parent-structure guessing and the numbered-template fallback) run at
// all. A caller that only wants exact known/owned-name hits, and would
// rather see a raw hash than a guessed name, sets this on the table it
// queries.
func (t *Table) SetDisableRecovery(disable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disableRecovery = disable
}

// recognizeLocked reports the name for hash if it is known or previously
// owned, without attempting recovery. Callers must hold t.mu.
func (t *Table) recognizeLocked(hash paramhash.Hash) (string, bool) {
	if name, ok := t.known[hash]; ok {
		return name, true
	}
	if name, ok := t.owned[hash]; ok {
		return name, true
	}
	return "", false
}

// Lookup resolves hash to a name given its zero-based ordinal within
// its parent map and the parent's own hash, following the normative
// five-step algorithm:
//
//  1. hash is a known name.
//  2. hash was previously recovered (owned).
//  3. the parent hash is itself recognised; candidate names are built
//     from the parent's name (and "Children", and the parent's name
//     with a plural/"List" suffix stripped) combined with ordinal and
//     ordinal+1 across six numeric formatting patterns.
//  4. a numbered name template, evaluated for i in [0, ordinal+2).
//  5. not found.
func (t *Table) Lookup(hash paramhash.Hash, ordinal int, parentHash paramhash.Hash) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if name, ok := t.recognizeLocked(hash); ok {
		return name, true
	}
	if t.disableRecovery {
		return "", false
	}

	if parentName, ok := t.recognizeLocked(parentHash); ok {
		if name, ok := recoverFromParent(parentName, ordinal, hash); ok {
			t.owned[hash] = name
			return name, true
		}
	}

	for _, template := range t.templates {
		for i := 0; i < ordinal+2; i++ {
			candidate := fmt.Sprintf(template, i)
			if paramhash.Compute(candidate) == hash {
				t.owned[hash] = candidate
				return candidate, true
			}
		}
	}

	return "", false
}

// recoverFromParent implements step 3 of the lookup algorithm in
// isolation: given a resolved parent name, search the candidate
// prefix set × ordinal window × pattern set for a match.
func recoverFromParent(parentName string, ordinal int, hash paramhash.Hash) (string, bool) {
	prefixes := append([]string{parentName, "Children"}, pluralSuffixStrippedPrefixes(parentName)...)

	for _, prefix := range prefixes {
		for _, i := range [2]int{ordinal, ordinal + 1} {
			for _, candidate := range numberedCandidates(prefix, i) {
				if paramhash.Compute(candidate) == hash {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// numberedCandidates returns the six normative "{prefix}{i}" pattern
// variants, in order.
func numberedCandidates(prefix string, i int) [6]string {
	return [6]string{
		fmt.Sprintf("%s%d", prefix, i),
		fmt.Sprintf("%s_%d", prefix, i),
		fmt.Sprintf("%s%02d", prefix, i),
		fmt.Sprintf("%s_%02d", prefix, i),
		fmt.Sprintf("%s%03d", prefix, i),
		fmt.Sprintf("%s_%03d", prefix, i),
	}
}

// pluralSuffixStrippedPrefixes returns name with each of the suffixes
// "s", "es", "List" stripped, in that order, for every suffix name
// actually carries -- not just the first match. "Boxes" ends in both
// "s" and "es", so it yields both "Boxe" and "Box" as candidates,
// tried in that order.
func pluralSuffixStrippedPrefixes(name string) []string {
	var prefixes []string
	for _, suffix := range [3]string{"s", "es", "List"} {
		if strings.HasSuffix(name, suffix) {
			prefixes = append(prefixes, name[:len(name)-len(suffix)])
		}
	}
	return prefixes
}

// Resolve tries extra's Lookup, falling back to def's. Either table
// may be nil, in which case it is skipped.
func Resolve(extra, def *Table, hash paramhash.Hash, ordinal int, parentHash paramhash.Hash) (string, bool) {
	if extra != nil {
		if name, ok := extra.Lookup(hash, ordinal, parentHash); ok {
			return name, true
		}
	}
	if def != nil {
		if name, ok := def.Lookup(hash, ordinal, parentHash); ok {
			return name, true
		}
	}
	return "", false
}
