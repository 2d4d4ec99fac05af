// SPDX-License-Identifier: MIT
// Package interact: order-2 expansion kernels over one shared pair walk.

package interact

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("interact: nil matrix")

	// ErrEmptyMatrix indicates an input with no rows or no columns;
	// expansions require at least a 1×1 matrix.
	ErrEmptyMatrix = errors.New("interact: matrix must have at least one row and one column")
)

// Triangular returns n(n+1)/2, the number of unordered pairs (i, j) with
// i ≤ j over n items — the expanded column count for an n-column matrix.
// Negative n yields 0.
// Complexity: O(1).
func Triangular(n int) int {
	if n < 0 {
		return 0
	}

	return n * (n + 1) / 2
}

// expand walks pairs (i, j), i ≤ j, over X's columns in lexicographic order
// (outer i, inner j) and fills column k of the result with
// combine(X[·,i], X[·,j]) applied elementwise per row. This single walk is
// the column-order contract every exported variant and Order2Labels share.
func expand(X mat.Matrix, combine func(xi, xj float64) float64) (*mat.Dense, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	out := mat.NewDense(r, Triangular(c), nil)
	k := 0
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			for row := 0; row < r; row++ {
				out.Set(row, k, combine(X.At(row, i), X.At(row, j)))
			}
			k++
		}
	}

	return out, nil
}

// Order2 emits the elementwise product xᵢ·xⱼ for every column pair (i, j),
// i ≤ j. Rows are preserved; the result has Triangular(m) columns.
//
// Concrete shape: X = [[1,2],[3,4]] → [[1,2,4],[9,12,16]]
// (columns 0×0, 0×1, 1×1).
//
// Complexity: O(n·m²).
func Order2(X mat.Matrix) (*mat.Dense, error) {
	out, err := expand(X, func(xi, xj float64) float64 { return xi * xj })
	if err != nil {
		return nil, fmt.Errorf("Order2: %w", err)
	}

	return out, nil
}

// Order2Power emits xᵢᵃ·xⱼᵇ under the same enumeration as Order2.
// Domain-invalid power results (e.g. negative base with fractional
// exponent) propagate as NaN, unguarded.
//
// Complexity: O(n·m²).
func Order2Power(X mat.Matrix, a, b float64) (*mat.Dense, error) {
	out, err := expand(X, func(xi, xj float64) float64 {
		return math.Pow(xi, a) * math.Pow(xj, b)
	})
	if err != nil {
		return nil, fmt.Errorf("Order2Power: %w", err)
	}

	return out, nil
}

// Order2Log emits a·ln(xᵢ) + b·ln(xⱼ) under the same enumeration as Order2.
// Entries ≤ 0 produce NaN or -Inf, unguarded — validate the domain before
// calling if finiteness matters downstream.
//
// Complexity: O(n·m²).
func Order2Log(X mat.Matrix, a, b float64) (*mat.Dense, error) {
	out, err := expand(X, func(xi, xj float64) float64 {
		return a*math.Log(xi) + b*math.Log(xj)
	})
	if err != nil {
		return nil, fmt.Errorf("Order2Log: %w", err)
	}

	return out, nil
}

// Order2Labels produces the label vector matching every order-2 expansion
// of an m-column matrix: "lᵢ_x_lⱼ" in the identical (i, j) enumeration
// order, so indices stay aligned with the numeric output. An empty input
// yields an empty (nil) result.
//
// Complexity: O(m²).
func Order2Labels(labels []string) []string {
	var out []string
	for i := 0; i < len(labels); i++ {
		for j := i; j < len(labels); j++ {
			out = append(out, labels[i]+"_x_"+labels[j])
		}
	}

	return out
}
