// Package fingerprint assembles fixed-width feature matrices from atomic
// structures and injected fingerprint generators.
//
// 🚀 What is fingerprint?
//
//	The assembly layer between raw structures and statistical models:
//	  • Structure — a minimal capability interface (atomic numbers, atom count)
//	  • Generator — any func(Structure) ([]float64, error) descriptor source
//	  • Normalization — the dataset-wide atom-type vocabulary and maximum
//	    atom count that keep padding consistent across train/test splits
//	  • Assembler — combines one or more generators into a single
//	    dimension-consistent gonum matrix, one row per structure
//
// ✨ Key guarantees:
//   - Row order always matches the input iteration order
//   - One Normalization ⇒ identical column count for every split
//   - Sentinel errors, no panics on user input
//   - Deterministic: keyed sets iterate in sorted key order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/featmat/fingerprint"
//
//	asm := fingerprint.NewAssembler()
//	if err := asm.Normalize(train, test); err != nil { ... }
//
//	X, err := asm.Vectors(train, compositionGen, bondCountGen)
//	// X has len(train) rows; widths match a later asm.Vectors(test, ...)
//
// Normalization is computed lazily from the first set seen when it was not
// supplied up front; call Normalize explicitly whenever train and test are
// vectorized separately but must share feature dimensionality.
//
// See example_test.go for complete walkthroughs.
package fingerprint
