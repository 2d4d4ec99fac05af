// SPDX-License-Identifier: MIT
// Package screen: oracle-driven iterative reduction of a labeled matrix.

package screen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("screen: nil matrix")

	// ErrNilOracle indicates that no screening oracle was supplied.
	ErrNilOracle = errors.New("screen: nil oracle")

	// ErrLabelMismatch indicates that the label count differs from the
	// column count; labels must stay index-aligned through every round.
	ErrLabelMismatch = errors.New("screen: label count must equal column count")

	// ErrTargetMismatch indicates that the target vector length differs
	// from the row count.
	ErrTargetMismatch = errors.New("screen: target length must equal row count")

	// ErrIndexOutOfRange indicates the oracle accepted a column index
	// outside the current matrix.
	ErrIndexOutOfRange = errors.New("screen: oracle returned column index out of range")

	// ErrEmptySelection indicates the oracle accepted no columns at all;
	// an empty matrix cannot be represented or reduced further.
	ErrEmptySelection = errors.New("screen: oracle accepted no columns")
)

// Oracle is the external screening capability: given the target vector y,
// the current matrix X and a requested size, it returns the accepted column
// indices (at most size of them). Index order defines the new column order.
type Oracle func(y []float64, X mat.Matrix, size int) ([]int, error)

// Options tunes Reduce.
//
// Fields:
//   - TargetSize — stop once the column count is ≤ TargetSize.
//     Values ≤ 0 default to the row count of X (the classical n ≥ m rule
//     of thumb for downstream regression).
//   - Step — how many columns each oracle round is asked to drop.
//     Values ≤ 0 default to 1.
type Options struct {
	TargetSize int
	Step       int
}

// DefaultOptions returns the zero configuration: target = rows(X), step 1.
func DefaultOptions() *Options { return &Options{} }

// Reduce iteratively narrows X (and its label vector) toward
// opts.TargetSize columns, delegating every keep/drop decision to oracle.
//
// Stage 1 (Validate): non-nil matrix and oracle; len(labels) == cols;
// len(y) == rows.
// Stage 2 (Iterate): while cols > target, request cols − step accepted
// indices and subset X and labels to them, in the oracle's order.
// Stage 3 (Finalize): return the narrowed matrix and labels. Inputs are
// never mutated; each round allocates the subset afresh.
//
// Oracle errors propagate unchanged; out-of-range or empty accept sets
// fail fast with the sentinels above.
func Reduce(X *mat.Dense, y []float64, labels []string, oracle Oracle, opts *Options) (*mat.Dense, []string, error) {
	if X == nil {
		return nil, nil, fmt.Errorf("Reduce: %w", ErrNilMatrix)
	}
	if oracle == nil {
		return nil, nil, fmt.Errorf("Reduce: %w", ErrNilOracle)
	}
	rows, cols := X.Dims()
	if len(labels) != cols {
		return nil, nil, fmt.Errorf("Reduce: %d labels for %d columns: %w",
			len(labels), cols, ErrLabelMismatch)
	}
	if len(y) != rows {
		return nil, nil, fmt.Errorf("Reduce: %d targets for %d rows: %w",
			len(y), rows, ErrTargetMismatch)
	}

	target := rows
	if opts != nil && opts.TargetSize > 0 {
		target = opts.TargetSize
	}
	step := 1
	if opts != nil && opts.Step > 0 {
		step = opts.Step
	}

	for cols > target {
		accepted, err := oracle(y, X, cols-step)
		if err != nil {
			return nil, nil, fmt.Errorf("Reduce: oracle: %w", err)
		}
		X, labels, err = subset(X, labels, accepted)
		if err != nil {
			return nil, nil, fmt.Errorf("Reduce: %w", err)
		}
		_, cols = X.Dims()
	}

	return X, labels, nil
}

// subset builds a fresh matrix and label vector holding exactly the
// accepted columns, in the accepted order.
func subset(X *mat.Dense, labels []string, accepted []int) (*mat.Dense, []string, error) {
	if len(accepted) == 0 {
		return nil, nil, ErrEmptySelection
	}
	rows, cols := X.Dims()

	out := mat.NewDense(rows, len(accepted), nil)
	kept := make([]string, len(accepted))
	col := make([]float64, rows)
	for k, idx := range accepted {
		if idx < 0 || idx >= cols {
			return nil, nil, fmt.Errorf("column %d of %d: %w", idx, cols, ErrIndexOutOfRange)
		}
		mat.Col(col, idx, X)
		out.SetCol(k, col)
		kept[k] = labels[idx]
	}

	return out, kept, nil
}
