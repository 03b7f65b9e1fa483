package matcher

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

func TestGreedySeeded_ExactPair(t *testing.T) {
	// Arrange
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 4.00, 1, 5),
		makeProduct("B", "Feijao", 6.00, 1, 5),
	}

	// Act
	result := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(1)))

	// Assert
	require.NotNil(t, result)
	assert.InDelta(t, 10.00, result.Total(), 0.40)
	assert.ElementsMatch(t, []string{"A", "B"}, result.Codes())
}

func TestGreedySeeded_RespectsTolerance(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 4.00, 1, 5),
		makeProduct("B", "Feijao", 4.00, 1, 5),
	}

	// Best possible sum is 8.00, more than 0.40 away from 10.00
	result := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(1)))

	assert.Nil(t, result)
}

func TestGreedySeeded_EmptyPool_ReturnsNil(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	result := m.GreedySeeded(nil, 10.00, rand.New(rand.NewSource(1)))

	assert.Nil(t, result)
}

func TestGreedySeeded_NoDuplicateCodes(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 2.00, 1, 5),
		makeProduct("B", "Feijao", 2.00, 1, 5),
		makeProduct("C", "Oleo", 2.00, 1, 5),
		makeProduct("D", "Cafe", 2.00, 1, 5),
		makeProduct("E", "Acucar", 2.00, 1, 5),
	}

	result := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(7)))

	require.NotNil(t, result)
	seen := make(map[string]bool)
	for _, code := range result.Codes() {
		assert.False(t, seen[code], "code %s picked twice", code)
		seen[code] = true
	}
}

func TestGreedySeeded_RespectsMaxItems(t *testing.T) {
	config := DefaultConfig()
	config.MaxItems = 3
	m := NewMatcher(config)

	pool := make([]catalog.Product, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, makeProduct(string(rune('A'+i)), "Item", 1.00, 1, 5))
	}

	// Ten 1.00 items cannot reach 10.00 in three picks
	result := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(3)))

	assert.Nil(t, result)
}

func TestGreedySeeded_DeterministicForFixedSeed(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 3.00, 1, 5),
		makeProduct("B", "Feijao", 7.00, 1, 5),
		makeProduct("C", "Oleo", 4.00, 1, 5),
		makeProduct("D", "Cafe", 6.00, 1, 5),
	}

	first := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(42)))
	second := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(42)))

	require.NotNil(t, first)
	assert.Equal(t, first.Codes(), second.Codes())
}

func TestGreedy_AnySeedStillWithinTolerance(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	pool := []catalog.Product{
		makeProduct("A", "Arroz", 3.00, 1, 5),
		makeProduct("B", "Feijao", 7.00, 1, 5),
		makeProduct("C", "Oleo", 4.00, 1, 5),
		makeProduct("D", "Cafe", 6.00, 1, 5),
		makeProduct("E", "Acucar", 10.00, 1, 5),
	}

	// The shuffle may produce different combinations, but every accepted
	// one has to land inside the tolerance.
	for seed := int64(0); seed < 20; seed++ {
		result := m.GreedySeeded(pool, 10.00, rand.New(rand.NewSource(seed)))
		if result != nil {
			assert.LessOrEqual(t, math.Abs(10.00-result.Total()), m.config.Tolerance+epsilon,
				"seed %d produced an out-of-tolerance combination", seed)
			assert.LessOrEqual(t, len(result), m.config.MaxItems)
		}
	}
}
