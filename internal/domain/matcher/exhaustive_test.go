package matcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

func TestExhaustive_ExactPair(t *testing.T) {
	// Arrange
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 4.00, 1, 5),
		makeProduct("B", "Feijao", 6.00, 1, 5),
	}

	// Act
	result, err := m.Exhaustive(pool, 10.00)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 0.0, math.Abs(result.Total()-10.00), 0.001)
	assert.ElementsMatch(t, []string{"A", "B"}, result.Codes())
}

func TestExhaustive_SingleItemNeverReturned(t *testing.T) {
	// A lone exact-price item is Nearest's responsibility, not a
	// combination; sizes start at two.
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 10.00, 1, 5),
	}

	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestExhaustive_NoSubsetWithinTolerance(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 1.00, 1, 5),
		makeProduct("B", "Feijao", 2.00, 1, 5),
		makeProduct("C", "Oleo", 30.00, 1, 5),
	}

	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestExhaustive_PicksBestDiff(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 4.30, 1, 5),
		makeProduct("B", "Feijao", 6.00, 1, 5),
		makeProduct("C", "Oleo", 4.10, 1, 5),
	}

	// {A,B} sums 10.30 (diff 0.30), {C,B} sums 10.10 (diff 0.10)
	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.ElementsMatch(t, []string{"C", "B"}, result.Codes())
}

func TestExhaustive_ExactMatchStopsLargerSizes(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 4.00, 1, 5),
		makeProduct("B", "Feijao", 6.00, 1, 5),
		makeProduct("C", "Oleo", 3.00, 1, 5),
		makeProduct("D", "Cafe", 3.00, 1, 5),
		makeProduct("E", "Acucar", 4.00, 1, 5),
	}

	// An exact pair exists; the triple {C,D,E} also sums to 10 but the
	// pair must win because the search stops at the first exact match.
	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result, 2)
	assert.InDelta(t, 10.00, result.Total(), 0.001)
}

func TestExhaustive_FindsExactWhenOneExists(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 1.10, 1, 5),
		makeProduct("B", "Feijao", 2.20, 1, 5),
		makeProduct("C", "Oleo", 3.30, 1, 5),
		makeProduct("D", "Cafe", 3.40, 1, 5),
	}

	// 1.10 + 2.20 + 3.30 + 3.40 = 10.00 exactly
	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 10.00, result.Total(), 0.001)
}

func TestExhaustive_PoolTooLarge(t *testing.T) {
	config := DefaultConfig()
	config.MaxExhaustivePool = 3
	m := NewMatcher(config)

	pool := []catalog.Product{
		makeProduct("A", "Arroz", 1.00, 1, 5),
		makeProduct("B", "Feijao", 2.00, 1, 5),
		makeProduct("C", "Oleo", 3.00, 1, 5),
		makeProduct("D", "Cafe", 4.00, 1, 5),
	}

	result, err := m.Exhaustive(pool, 10.00)

	assert.ErrorIs(t, err, ErrSearchTooLarge)
	assert.Nil(t, result)
}

func TestExhaustive_AfterExclusion_NoMatch(t *testing.T) {
	// Exclusion list removes the only partner item, so no pair reaches
	// the target anymore.
	m := NewMatcher(DefaultConfig())
	snapshot := []catalog.Product{
		makeProduct("A", "Arroz", 4.00, 1, 5),
		makeProduct("B", "Feijao", 6.00, 1, 5),
	}

	pool := m.BuildPool(snapshot, nil, []string{"feijao"})
	result, err := m.Exhaustive(pool, 10.00)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestExhaustive_NeverExceedsTolerance(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 2.70, 1, 5),
		makeProduct("B", "Feijao", 5.10, 1, 5),
		makeProduct("C", "Oleo", 6.90, 1, 5),
		makeProduct("D", "Cafe", 1.30, 1, 5),
	}

	for _, target := range []float64{5.00, 8.00, 10.00, 13.00, 40.00} {
		result, err := m.Exhaustive(pool, target)
		require.NoError(t, err)
		if result != nil {
			assert.LessOrEqual(t, math.Abs(result.Total()-target), m.config.Tolerance+epsilon)
		}
	}
}
