// Package split partitions the rows of a feature matrix into groups for
// cross-validation and bootstrap workflows.
//
// 🚀 What does Split do?
//
//	Row indices are shuffled once (Fisher–Yates), then dealt into nsplit
//	groups:
//	  • default       — contiguous groups after the shuffle; any remainder
//	    goes one row at a time to the earliest groups, so sizes differ by
//	    at most 1 and the groups partition the rows exactly once.
//	  • WithFixedSize — every group holds exactly k rows; requires
//	    rows ≥ nsplit·k.
//	  • WithReplacement — the index order is re-shuffled independently
//	    before drawing each group, so groups may overlap (bootstrapping).
//
// ✨ Determinism:
//
//	No hidden time-based sources. The RNG is injectable via WithRand; when
//	omitted, a fixed-seed generator (DefaultSeed) is used so results are
//	reproducible by default. A *rand.Rand is not goroutine-safe — do not
//	share one across concurrent Split calls.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/featmat/split"
//
//	folds, err := split.Split(X, 5)                               // ≈ even partition
//	boot, err := split.Split(X, 3, split.WithFixedSize(100),
//		split.WithReplacement(), split.WithRand(rng))          // 3×100 resamples
//
// Complexity: O(rows · cols) copying plus O(rows) per shuffle.
package split
