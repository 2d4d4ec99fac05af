// SPDX-License-Identifier: MIT
// Package fingerprint: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package fingerprint

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fingerprint: ..." for consistency and to
// allow easy grepping across logs. If call-site context is essential, wrap
// with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrInvalidStructureSet is returned when a structure collection is nil or
	// is neither an ordered list nor a keyed map of structures.
	ErrInvalidStructureSet = errors.New("fingerprint: structure set must be a list or keyed map of structures")

	// ErrEmptyStructureSet is returned when an operation that must produce at
	// least one matrix row receives a set with no structures.
	ErrEmptyStructureSet = errors.New("fingerprint: structure set is empty")

	// ErrNoGenerators is returned when vector assembly is requested without
	// any fingerprint generator.
	ErrNoGenerators = errors.New("fingerprint: at least one generator is required")

	// ErrNilGenerator is returned when a nil generator appears in the
	// generator list.
	ErrNilGenerator = errors.New("fingerprint: nil generator")

	// ErrVectorLength is returned when generator output lengths disagree
	// between structures, or a generator returns an empty vector. Fixed
	// output length is part of the Generator contract; padding against the
	// shared Normalization is the generator's responsibility.
	ErrVectorLength = errors.New("fingerprint: inconsistent generator vector length")

	// ErrTooFewSources is returned when descriptor combination is requested
	// with fewer than two descriptor sources.
	ErrTooFewSources = errors.New("fingerprint: at least two descriptor sources are required")

	// ErrUnknownOrder is returned for an unrecognized CombineOrder value.
	ErrUnknownOrder = errors.New("fingerprint: unknown combine order")

	// ErrMissingField is returned when a key-value metadata field is absent
	// on a structure, or the structure carries no metadata at all.
	ErrMissingField = errors.New("fingerprint: key-value field not present on structure")
)
