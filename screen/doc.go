// Package screen narrows a feature matrix toward a target column count by
// repeatedly consulting an external screening oracle.
//
// 🚀 What is screening?
//
//	Independence screening ranks candidate features against a target vector
//	and keeps only the most relevant ones. This package deliberately does
//	NOT rank anything itself: the Oracle capability decides which columns
//	survive, and Reduce only drives the iteration and applies the accepted
//	subset to the matrix and its label vector in lock-step.
//
// ✨ Contract:
//   - labels must be index-aligned with X's columns (ErrLabelMismatch).
//   - While columns > TargetSize, the oracle is asked for columns − Step
//     accepted indices; X and labels shrink to that subset each round.
//   - A well-behaved oracle returns at most the requested count, so the
//     loop ends in at most ⌈(m − target)/step⌉ calls. An oracle that never
//     shrinks its accept set never terminates — that is a caller contract,
//     intentionally unguarded here.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/featmat/screen"
//
//	Xr, lr, err := screen.Reduce(X, y, labels, oracle, nil) // target = rows
//
// Complexity: O(rounds · (oracle cost + n·m)) time.
package screen
