// SPDX-License-Identifier: MIT
// Package fingerprint: the Assembler — dataset-level vector assembly.

package fingerprint

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Assembler combines one or more fingerprint generators into a single
// dataset matrix with a shared Normalization.
//
// Lifecycle of the cached Normalization:
//   - unset at construction (or supplied via options),
//   - filled on first Vectors call from the set being assembled,
//   - or computed jointly over train ∪ test by an explicit Normalize call,
//   - thereafter stable for the Assembler's lifetime.
//
// An Assembler is single-writer state: concurrent Normalize/Vectors calls
// against one instance require external synchronization.
type Assembler struct {
	norm Normalization
}

// Option configures a new Assembler.
type Option func(*Assembler)

// WithAtomTypes supplies the atom-type vocabulary up front. The value is
// copied, de-duplicated and sorted, so callers may pass observations in any
// order.
func WithAtomTypes(types []int) Option {
	return func(a *Assembler) {
		seen := make(map[int]struct{}, len(types))
		uniq := make([]int, 0, len(types))
		for _, z := range types {
			if _, ok := seen[z]; ok {
				continue
			}
			seen[z] = struct{}{}
			uniq = append(uniq, z)
		}
		sort.Ints(uniq)
		a.norm.AtomTypes = uniq
	}
}

// WithMaxAtoms supplies the maximum atom count up front. Non-positive
// values are ignored (the count stays "unset" and is inferred later).
func WithMaxAtoms(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.norm.MaxAtoms = n
		}
	}
}

// WithNormalization supplies a previously computed Normalization wholesale,
// e.g. one returned by NormalizeStructures.
func WithNormalization(n Normalization) Option {
	return func(a *Assembler) { a.norm = n }
}

// NewAssembler returns an Assembler with the given options applied.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Normalization returns the currently cached normalization parameters.
// Generators typically capture these to size and pad their output.
func (a *Assembler) Normalization() Normalization { return a.norm }

// Normalize computes and caches the Normalization jointly over train ∪ test
// (test may be nil). Call it before Vectors whenever train and test are
// assembled separately but must share feature dimensionality; both cached
// parameters are overwritten.
//
// Complexity: O(total atoms).
func (a *Assembler) Normalize(train, test StructureSet) error {
	norm, err := NormalizeStructures(train, test)
	if err != nil {
		return fmt.Errorf("Normalize: %w", err)
	}
	a.norm = norm

	return nil
}

// Vectors assembles the dataset matrix for set: one row per structure in
// iteration order, columns from the generators in the given order.
//
// Stage 1 (Validate): set non-nil & non-empty, at least one non-nil
// generator.
// Stage 2 (Normalize): any unset cached parameter is inferred from set
// alone and cached for subsequent calls.
// Stage 3 (Assemble): a single generator's vector becomes the row as-is;
// multiple generators are concatenated in the given order. Every row must
// come out the same non-zero length or assembly fails with ErrVectorLength.
//
// Complexity: O(n · generator cost) plus one O(n·m) matrix fill.
func (a *Assembler) Vectors(set StructureSet, gens ...Generator) (*mat.Dense, error) {
	if set == nil {
		return nil, fmt.Errorf("Vectors: %w", ErrInvalidStructureSet)
	}
	if len(gens) == 0 {
		return nil, fmt.Errorf("Vectors: %w", ErrNoGenerators)
	}
	for gi, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("Vectors: generator %d: %w", gi, ErrNilGenerator)
		}
	}
	n := set.Len()
	if n == 0 {
		return nil, fmt.Errorf("Vectors: %w", ErrEmptyStructureSet)
	}

	if err := a.inferMissing(set); err != nil {
		return nil, fmt.Errorf("Vectors: %w", err)
	}

	rows := make([][]float64, 0, n)
	width := -1
	for i := 0; i < n; i++ {
		row, err := a.rowFor(set.At(i), gens)
		if err != nil {
			return nil, fmt.Errorf("Vectors: structure %d: %w", i, err)
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("Vectors: structure %d: got %d values, want %d: %w",
				i, len(row), width, ErrVectorLength)
		}
		rows = append(rows, row)
	}
	if width == 0 {
		return nil, fmt.Errorf("Vectors: %w", ErrVectorLength)
	}

	out := mat.NewDense(n, width, nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}

	return out, nil
}

// inferMissing fills any unset cached normalization parameter from set
// alone, leaving explicitly supplied parameters untouched.
func (a *Assembler) inferMissing(set StructureSet) error {
	if a.norm.complete() {
		return nil
	}
	norm, err := NormalizeStructures(set, nil)
	if err != nil {
		return err
	}
	if a.norm.AtomTypes == nil {
		a.norm.AtomTypes = norm.AtomTypes
	}
	if a.norm.MaxAtoms <= 0 {
		a.norm.MaxAtoms = norm.MaxAtoms
	}

	return nil
}

// rowFor evaluates the generators on one structure and returns the row.
// A lone generator's output is used directly; otherwise outputs are
// concatenated in generator order.
func (a *Assembler) rowFor(s Structure, gens []Generator) ([]float64, error) {
	if len(gens) == 1 {
		return gens[0](s)
	}

	var row []float64
	for gi, g := range gens {
		vec, err := g(s)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", gi, err)
		}
		row = append(row, vec...)
	}

	return row, nil
}
