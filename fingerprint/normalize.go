// SPDX-License-Identifier: MIT
// Package fingerprint: dataset-wide normalization parameters.
//
// Normalization is the explicit contract that keeps feature widths identical
// between splits that are vectorized separately: generators size and pad
// their output against one shared vocabulary and maximum atom count, so two
// matrices built under the same Normalization always agree on column count.

package fingerprint

import "sort"

// Normalization carries the dataset-wide parameters fingerprint generators
// pad against.
//
// Fields:
//   - AtomTypes — sorted unique element codes observed across the dataset;
//     nil means not yet computed.
//   - MaxAtoms — the largest AtomCount across the dataset; zero means not
//     yet computed.
//
// A Normalization computed over train ∪ test must be reused for every
// subsequent assembly over either split; recomputing it on a structurally
// different dataset invalidates prior column semantics (caller
// responsibility, not guarded here).
type Normalization struct {
	AtomTypes []int
	MaxAtoms  int
}

// complete reports whether both parameters have been determined.
func (n Normalization) complete() bool {
	return n.AtomTypes != nil && n.MaxAtoms > 0
}

// NormalizeStructures computes a Normalization jointly over a training set
// and an optional test set. The test set never changes membership tests on
// the training side — it only widens the vocabulary and the maximum atom
// count so both splits pad identically.
//
// Stage 1 (Validate): train must be non-nil; test may be nil.
// Stage 2 (Scan): union element codes and track the maximum atom count.
// Stage 3 (Finalize): sort the vocabulary and return.
// Complexity: O(total atoms + t log t) where t is the vocabulary size.
func NormalizeStructures(train, test StructureSet) (Normalization, error) {
	if train == nil {
		return Normalization{}, ErrInvalidStructureSet
	}

	seen := make(map[int]struct{})
	maxAtoms := 0
	for _, set := range []StructureSet{train, test} {
		if set == nil {
			continue
		}
		for i := 0; i < set.Len(); i++ {
			s := set.At(i)
			for _, z := range s.AtomicNumbers() {
				seen[z] = struct{}{}
			}
			if c := s.AtomCount(); c > maxAtoms {
				maxAtoms = c
			}
		}
	}

	types := make([]int, 0, len(seen))
	for z := range seen {
		types = append(types, z)
	}
	sort.Ints(types)

	return Normalization{AtomTypes: types, MaxAtoms: maxAtoms}, nil
}
