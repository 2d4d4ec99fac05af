// Package interact derives order-2 interaction features from an existing
// feature matrix, with index-aligned label generation.
//
// 🚀 What is an order-2 interaction?
//
//	A derived column built from an unordered pair (i, j), i ≤ j, of base
//	columns. Three variants share one enumeration:
//	  • Order2      — xᵢ · xⱼ            (plain product)
//	  • Order2Power — xᵢᵃ · xⱼᵇ          (power product)
//	  • Order2Log   — a·ln(xᵢ) + b·ln(xⱼ) (log combination)
//
// ✨ Key guarantees:
//   - A matrix with m columns expands to Triangular(m) = m(m+1)/2 columns;
//     the row count and row order never change.
//   - Column enumeration is lexicographic over (i, j) with outer i and
//     inner j ≥ i: column 0 = (0,0), column 1 = (0,1), …
//   - Order2Labels walks the identical enumeration, so one label vector
//     stays index-aligned with every expansion variant of the same m.
//   - Pure functions: inputs are never mutated; each call allocates a
//     fresh matrix.
//
// ⚠️ Numeric policy: Order2Log and Order2Power apply math.Log/math.Pow
// verbatim. Non-positive inputs under the log, or domain-invalid power
// combinations, propagate as NaN/±Inf — validating the domain is the
// caller's responsibility, matching the fail-late semantics of elementwise
// numeric kernels.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/featmat/interact"
//
//	X2, err := interact.Order2(X)            // n × m(m+1)/2
//	l2 := interact.Order2Labels(labels)      // aligned with X2's columns
//
// Complexity: every expansion is O(n·m²) time, O(n·m²) memory.
package interact
