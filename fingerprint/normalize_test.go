package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featmat/fingerprint"
)

func TestNormalizeStructures_UnionIsSorted(t *testing.T) {
	t.Parallel()

	train := smallTrainSet()
	test := fingerprint.List{platinumDimer()}

	norm, err := fingerprint.NormalizeStructures(train, test)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 6, 8, 78}, norm.AtomTypes, "vocabulary spans train ∪ test, ascending")
	assert.Equal(t, 5, norm.MaxAtoms, "methane is the largest system")
}

func TestNormalizeStructures_TestSetOptional(t *testing.T) {
	t.Parallel()

	norm, err := fingerprint.NormalizeStructures(smallTrainSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 8}, norm.AtomTypes)
	assert.Equal(t, 5, norm.MaxAtoms)
}

func TestNormalizeStructures_NilTrainRejected(t *testing.T) {
	t.Parallel()

	_, err := fingerprint.NormalizeStructures(nil, smallTrainSet())
	assert.ErrorIs(t, err, fingerprint.ErrInvalidStructureSet)
}

func TestNormalizeStructures_MaxAtomsDominatedByTest(t *testing.T) {
	t.Parallel()

	big := molecule{numbers: []int{6, 6, 6, 6, 6, 6, 1, 1}}
	norm, err := fingerprint.NormalizeStructures(
		fingerprint.List{water()},
		fingerprint.List{big},
	)
	require.NoError(t, err)
	assert.Equal(t, 8, norm.MaxAtoms, "test split widens padding")
}
