package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seekbench/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_StrictlyIncreasing verifies every adjacent pair of a generated
// dataset satisfies a < b (strict increase, no duplicates).
func TestGenerate_StrictlyIncreasing(t *testing.T) {
	d, err := dataset.Generate(500, 1, 10_000, dataset.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, d, 500)

	assert.NoError(t, d.Validate(), "generated dataset must be strictly increasing")
	for i := 1; i < len(d); i++ {
		assert.Less(t, d[i-1], d[i], "adjacent pair at index %d", i)
	}
}

// TestGenerate_ExactRange checks the boundary where range size equals count:
// Generate(5,1,5) must yield exactly [1,2,3,4,5].
func TestGenerate_ExactRange(t *testing.T) {
	d, err := dataset.Generate(5, 1, 5, dataset.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset{1, 2, 3, 4, 5}, d)
}

// TestGenerate_RangeTooSmall ensures an infeasible (count,min,max) combination
// fails fast with ErrRangeTooSmall instead of sampling forever.
func TestGenerate_RangeTooSmall(t *testing.T) {
	d, err := dataset.Generate(5, 1, 4, dataset.WithSeed(7))
	assert.ErrorIs(t, err, dataset.ErrRangeTooSmall)
	assert.Nil(t, d)
}

// TestGenerate_NegativeCount ensures count < 0 is rejected with ErrBadCount.
func TestGenerate_NegativeCount(t *testing.T) {
	_, err := dataset.Generate(-1, 1, 10)
	assert.ErrorIs(t, err, dataset.ErrBadCount)
}

// TestGenerate_MinExceedsMax ensures an inverted range is rejected with ErrBadRange.
func TestGenerate_MinExceedsMax(t *testing.T) {
	_, err := dataset.Generate(3, 10, 1)
	assert.ErrorIs(t, err, dataset.ErrBadRange)
}

// TestGenerate_ZeroCount verifies count == 0 yields an empty, valid dataset.
func TestGenerate_ZeroCount(t *testing.T) {
	d, err := dataset.Generate(0, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, d)
}

// TestGenerate_Deterministic verifies the same seed reproduces the same dataset.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := dataset.Generate(200, -1_000, 1_000, dataset.WithSeed(99))
	require.NoError(t, err)
	second, err := dataset.Generate(200, -1_000, 1_000, dataset.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical seeds must yield identical datasets")
}

// TestGenerate_WithRand verifies an injected RNG drives generation and that
// no hidden state is shared between successive calls.
func TestGenerate_WithRand(t *testing.T) {
	first, err := dataset.Generate(50, 0, 500, dataset.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	second, err := dataset.Generate(50, 0, 500, dataset.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestGenerate_BoundsRespected ensures every generated value lies in [min,max],
// including a range of negative values.
func TestGenerate_BoundsRespected(t *testing.T) {
	d, err := dataset.Generate(100, -500, -100, dataset.WithSeed(3))
	require.NoError(t, err)
	for _, v := range d {
		assert.GreaterOrEqual(t, v, -500)
		assert.LessOrEqual(t, v, -100)
	}
}

// TestWithRand_NilPanics ensures the option constructor fails fast on nil.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { dataset.WithRand(nil) })
}
