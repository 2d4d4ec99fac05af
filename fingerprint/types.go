// Package fingerprint: core capability interfaces and structure collections.
package fingerprint

import "sort"

// Structure is the minimal capability surface this package requires from an
// atomic or molecular system. Implementations are treated as immutable.
//
//   - AtomicNumbers returns the ordered element codes of the system
//     (e.g. CH4 → [6, 1, 1, 1, 1]).
//   - AtomCount returns the number of atoms in the system.
type Structure interface {
	AtomicNumbers() []int
	AtomCount() int
}

// KeyValuer is the optional metadata capability of a Structure. Scalars
// stored under named keys are typically used as regression targets.
type KeyValuer interface {
	KeyValuePairs() map[string]float64
}

// Generator produces a fixed-length numeric fingerprint for one structure.
//
// Contract: for a fixed assembler configuration the output length must be
// constant across structures. Generators whose width depends on the dataset
// (composition vectors, padded coordinate lists, ...) must derive that width
// from the shared Normalization, never from the individual structure.
type Generator func(Structure) ([]float64, error)

// DescriptorSource is a zero-argument callable yielding a feature label
// vector, already bound to whatever structure or dataset it describes.
type DescriptorSource func() []string

// CombineOrder selects the concatenation order used by CombineDescriptors.
type CombineOrder int

const (
	// ReverseGiven concatenates sources in the reverse of the argument
	// order. This mirrors the historical behavior of combined-descriptor
	// assembly and is the default.
	ReverseGiven CombineOrder = iota

	// AsGiven concatenates sources in argument order.
	AsGiven
)

// StructureSet is an ordered, finite collection of structures. Iteration
// order defines matrix row order and must be stable between calls.
type StructureSet interface {
	// Len returns the number of structures in the set.
	Len() int
	// At returns the structure at position i, 0 ≤ i < Len().
	At(i int) Structure
}

// List is an ordered StructureSet backed by a slice.
type List []Structure

// Len returns the number of structures. Complexity: O(1).
func (l List) Len() int { return len(l) }

// At returns the i-th structure in slice order. Complexity: O(1).
func (l List) At(i int) Structure { return l[i] }

// Dict is a keyed StructureSet. Iteration visits structures in ascending
// key order so that row order is deterministic.
type Dict map[string]Structure

// Len returns the number of structures. Complexity: O(1).
func (d Dict) Len() int { return len(d) }

// At returns the structure under the i-th smallest key.
// Complexity: O(n log n) per call; keep Dict sets small or convert to a
// List via Ordered when iterating repeatedly.
func (d Dict) At(i int) Structure { return d[d.keys()[i]] }

// Ordered returns the structures as a List in ascending key order.
// Complexity: O(n log n).
func (d Dict) Ordered() List {
	out := make(List, 0, len(d))
	for _, k := range d.keys() {
		out = append(out, d[k])
	}

	return out
}

// keys returns the sorted key slice backing deterministic iteration.
func (d Dict) keys() []string {
	ks := make([]string, 0, len(d))
	for k := range d {
		ks = append(ks, k)
	}
	sort.Strings(ks)

	return ks
}

// AsStructureSet adapts a raw collection into a StructureSet. Accepted
// inputs: StructureSet (returned as-is), []Structure, and
// map[string]Structure. Any other value, including nil, yields
// ErrInvalidStructureSet — the input-type contract of vector assembly.
//
// Complexity: O(1); keyed maps sort lazily on iteration.
func AsStructureSet(v any) (StructureSet, error) {
	switch s := v.(type) {
	case nil:
		return nil, ErrInvalidStructureSet
	case StructureSet:
		return s, nil
	case []Structure:
		return List(s), nil
	case map[string]Structure:
		return Dict(s), nil
	default:
		return nil, ErrInvalidStructureSet
	}
}
