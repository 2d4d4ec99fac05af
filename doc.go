// Package featmat is your in-memory toolkit for turning atomic and
// molecular structures into fixed-width feature matrices — from
// fingerprint assembly to combinatorial feature engineering and
// dataset partitioning.
//
// 🚀 What is featmat?
//
//	A modern, deterministic library that brings together:
//		• Fingerprint assembly: combine generator callables into padded,
//		  dimension-consistent dataset matrices
//		• Normalization: dataset-wide atom-type vocabulary & max-atom-count
//		  inference, shared across train/test splits
//		• Order-2 interactions: product, power-product and log-combination
//		  expansions with index-aligned labels
//		• Screening: oracle-driven iterative dimensionality reduction
//		• Splitting: disjoint or resampled row partitions for CV/bootstrap
//
// ✨ Why choose featmat?
//
//   - Predictable shapes – one normalization, identical widths everywhere
//   - Deterministic – injectable RNG, no hidden time-based sources
//   - Explicit contracts – sentinel errors, no panics on user input
//   - Composable – every stage consumes and produces gonum mat values
//
// Under the hood, everything is organized under four subpackages:
//
//	fingerprint/ — Assembler, Structure & Normalization primitives
//	interact/    — order-2 interaction expansions + label generation
//	screen/      — oracle-driven iterative feature screening
//	split/       — shuffled row partitioning for validation workflows
//
// Typical data flow:
//
//	structures → fingerprint.Assembler → interact.Order2 → screen.Reduce → split.Split
//
// Dive into README.md for full examples and the feature matrix of each
// subpackage.
//
//	go get github.com/katalvlaran/featmat
package featmat
