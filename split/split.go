// SPDX-License-Identifier: MIT
// Package split: shuffled row partitioning with an injectable RNG.

package split

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("split: nil matrix")

	// ErrBadSplitCount indicates nsplit < 1.
	ErrBadSplitCount = errors.New("split: nsplit must be at least 1")

	// ErrInsufficientRows indicates that the matrix has too few rows for
	// the requested grouping (fixed-size groups, or more groups than rows).
	ErrInsufficientRows = errors.New("split: not enough rows for requested groups")
)

// DefaultSeed is the fixed seed used when no RNG is injected. The value is
// arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// options collects the Split configuration; fields are unexported and only
// reachable through Option constructors.
type options struct {
	fixedSize   int
	replacement bool
	rng         *rand.Rand
}

// Option configures Split.
type Option func(*options)

// WithFixedSize requests exactly n rows per group instead of dividing all
// available rows. Panics if n < 1 (programmer error, not data-dependent).
func WithFixedSize(n int) Option {
	if n < 1 {
		panic("split: WithFixedSize requires n >= 1")
	}

	return func(o *options) { o.fixedSize = n }
}

// WithReplacement re-shuffles the index order independently before drawing
// each group, so groups may overlap and a row may appear in several groups.
func WithReplacement() Option {
	return func(o *options) { o.replacement = true }
}

// WithRand injects the random source used for shuffling. A nil value keeps
// the deterministic default (DefaultSeed).
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}

// Split divides X's rows into nsplit groups, returned in generation order.
//
// Stage 1 (Validate): non-nil matrix, nsplit ≥ 1, enough rows for the
// requested grouping.
// Stage 2 (Shuffle): one uniform Fisher–Yates permutation of the row
// indices; with replacement, an additional independent shuffle precedes
// each group draw.
// Stage 3 (Deal): fixed-size mode copies exactly fixedSize rows per group;
// otherwise contiguous runs of the permutation with the remainder spread
// one row to the earliest groups (sizes differ by at most 1, and without
// replacement every row lands in exactly one group).
//
// Complexity: O(total drawn rows · cols) copying.
func Split(X *mat.Dense, nsplit int, opts ...Option) ([]*mat.Dense, error) {
	if X == nil {
		return nil, fmt.Errorf("Split: %w", ErrNilMatrix)
	}
	if nsplit < 1 {
		return nil, fmt.Errorf("Split: nsplit=%d: %w", nsplit, ErrBadSplitCount)
	}
	o := gatherOptions(opts)

	rows, _ := X.Dims()
	sizes, err := groupSizes(rows, nsplit, o.fixedSize)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}

	index := make([]int, rows)
	for i := range index {
		index[i] = i
	}
	shuffle(index, o.rng)

	groups := make([]*mat.Dense, 0, nsplit)
	start := 0
	for _, size := range sizes {
		if o.replacement {
			shuffle(index, o.rng)
			groups = append(groups, takeRows(X, index[:size]))

			continue
		}
		groups = append(groups, takeRows(X, index[start:start+size]))
		start += size
	}

	return groups, nil
}

// groupSizes computes the per-group row counts for the two modes.
func groupSizes(rows, nsplit, fixedSize int) ([]int, error) {
	sizes := make([]int, nsplit)
	if fixedSize > 0 {
		if rows < nsplit*fixedSize {
			return nil, fmt.Errorf("%d rows into %d groups of %d: %w",
				rows, nsplit, fixedSize, ErrInsufficientRows)
		}
		for g := range sizes {
			sizes[g] = fixedSize
		}

		return sizes, nil
	}

	if rows < nsplit {
		return nil, fmt.Errorf("%d rows into %d groups: %w", rows, nsplit, ErrInsufficientRows)
	}
	base, rem := rows/nsplit, rows%nsplit
	for g := range sizes {
		sizes[g] = base
		if g < rem {
			sizes[g]++ // earliest groups absorb the remainder
		}
	}

	return sizes, nil
}

// shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// takeRows copies the selected rows of X into a fresh matrix, in selection
// order.
func takeRows(X *mat.Dense, idx []int) *mat.Dense {
	_, cols := X.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for k, i := range idx {
		out.SetRow(k, X.RawRowView(i))
	}

	return out
}
