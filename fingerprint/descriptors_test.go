package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featmat/fingerprint"
)

func TestCombineDescriptors_ReverseGiven(t *testing.T) {
	t.Parallel()

	comp := func() []string { return []string{"count_H", "count_C"} }
	bonds := func() []string { return []string{"nbonds"} }

	labels, err := fingerprint.CombineDescriptors(fingerprint.ReverseGiven, comp, bonds)
	require.NoError(t, err)
	assert.Equal(t, []string{"nbonds", "count_H", "count_C"}, labels,
		"last source comes first under ReverseGiven")
}

func TestCombineDescriptors_AsGiven(t *testing.T) {
	t.Parallel()

	comp := func() []string { return []string{"count_H", "count_C"} }
	bonds := func() []string { return []string{"nbonds"} }

	labels, err := fingerprint.CombineDescriptors(fingerprint.AsGiven, comp, bonds)
	require.NoError(t, err)
	assert.Equal(t, []string{"count_H", "count_C", "nbonds"}, labels)
}

func TestCombineDescriptors_RequiresTwoSources(t *testing.T) {
	t.Parallel()

	one := func() []string { return []string{"alone"} }

	_, err := fingerprint.CombineDescriptors(fingerprint.AsGiven, one)
	assert.ErrorIs(t, err, fingerprint.ErrTooFewSources)

	_, err = fingerprint.CombineDescriptors(fingerprint.AsGiven)
	assert.ErrorIs(t, err, fingerprint.ErrTooFewSources)
}

func TestCombineDescriptors_UnknownOrderRejected(t *testing.T) {
	t.Parallel()

	src := func() []string { return []string{"x"} }
	_, err := fingerprint.CombineDescriptors(fingerprint.CombineOrder(99), src, src)
	assert.ErrorIs(t, err, fingerprint.ErrUnknownOrder)
}

func TestKeyValues_ExtractsInOrder(t *testing.T) {
	t.Parallel()

	vals, err := fingerprint.KeyValues(smallTrainSet(), "energy")
	require.NoError(t, err)
	assert.Equal(t, []float64{-76.4, -40.5, -188.6}, vals)
}

func TestKeyValues_MissingField(t *testing.T) {
	t.Parallel()

	_, err := fingerprint.KeyValues(smallTrainSet(), "band_gap")
	assert.ErrorIs(t, err, fingerprint.ErrMissingField)
}

func TestKeyValues_StructureWithoutMetadata(t *testing.T) {
	t.Parallel()

	set := fingerprint.List{water(), bare{numbers: []int{1, 1}}}
	_, err := fingerprint.KeyValues(set, "energy")
	assert.ErrorIs(t, err, fingerprint.ErrMissingField)
}

func TestKeyValues_NilSetRejected(t *testing.T) {
	t.Parallel()

	_, err := fingerprint.KeyValues(nil, "energy")
	assert.ErrorIs(t, err, fingerprint.ErrInvalidStructureSet)
}

func TestKeyValues_EmptySetYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	vals, err := fingerprint.KeyValues(fingerprint.List{}, "energy")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestKeyValueLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kvp_energy", fingerprint.KeyValueLabel("energy"))
}
