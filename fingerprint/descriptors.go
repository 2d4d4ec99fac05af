// Package fingerprint: descriptor-label combination and key-value targets.
package fingerprint

import "fmt"

// keyValuePrefix marks label columns derived from structure metadata.
const keyValuePrefix = "kvp_"

// CombineDescriptors invokes every descriptor source and concatenates the
// resulting label vectors into one.
//
// The concatenation order is an explicit parameter: ReverseGiven reproduces
// the historical reversed ordering, AsGiven concatenates in argument order.
// At least two sources are required (ErrTooFewSources) — combining a single
// vector is a no-op the caller should not route through here.
//
// Complexity: O(total labels).
func CombineDescriptors(order CombineOrder, sources ...DescriptorSource) ([]string, error) {
	if len(sources) < 2 {
		return nil, fmt.Errorf("CombineDescriptors: %w", ErrTooFewSources)
	}

	var combined []string
	switch order {
	case ReverseGiven:
		for i := len(sources) - 1; i >= 0; i-- {
			combined = append(combined, sources[i]()...)
		}
	case AsGiven:
		for _, src := range sources {
			combined = append(combined, src()...)
		}
	default:
		return nil, fmt.Errorf("CombineDescriptors: %d: %w", order, ErrUnknownOrder)
	}

	return combined, nil
}

// KeyValueLabel returns the column label under which the named metadata
// field appears in a feature-label vector, e.g. "kvp_formation_energy".
func KeyValueLabel(field string) string { return keyValuePrefix + field }

// KeyValues extracts the named metadata scalar from every structure in set,
// in iteration order — typically a regression-target column.
//
// Errors:
//   - ErrInvalidStructureSet — set is nil.
//   - ErrMissingField — a structure lacks the metadata capability or the
//     field is absent from its key-value pairs (fail-fast; no partial
//     result is returned).
//
// An empty set yields an empty slice; the matching column label is always
// available via KeyValueLabel.
//
// Complexity: O(n).
func KeyValues(set StructureSet, field string) ([]float64, error) {
	if set == nil {
		return nil, fmt.Errorf("KeyValues: %w", ErrInvalidStructureSet)
	}

	out := make([]float64, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		kv, ok := set.At(i).(KeyValuer)
		if !ok {
			return nil, fmt.Errorf("KeyValues: structure %d has no metadata: %w", i, ErrMissingField)
		}
		v, ok := kv.KeyValuePairs()[field]
		if !ok {
			return nil, fmt.Errorf("KeyValues: structure %d, field %q: %w", i, field, ErrMissingField)
		}
		out = append(out, v)
	}

	return out, nil
}
