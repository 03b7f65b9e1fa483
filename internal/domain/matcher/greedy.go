package matcher

import (
	"math"
	"math/rand"
	"time"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// Small epsilon on tolerance comparisons to absorb floating point noise
// in summed prices.
const epsilon = 0.0000001

// Greedy assembles a combination approximating target by repeatedly
// taking the affordable item closest to the remaining value. The working
// pool is shuffled first so repeated calls do not always favor catalog
// order; use GreedySeeded for reproducible results.
func (m *Matcher) Greedy(pool []catalog.Product, target float64) catalog.Combination {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return m.GreedySeeded(pool, target, rng)
}

// GreedySeeded is Greedy with an injected random source. The same pool,
// target, and source state always produce the same combination.
func (m *Matcher) GreedySeeded(pool []catalog.Product, target float64, rng *rand.Rand) catalog.Combination {
	working := make([]catalog.Product, len(pool))
	copy(working, pool)
	rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	var combination catalog.Combination
	remaining := target

	for step := 0; step < m.config.MaxItems; step++ {
		// Keep only items still affordable within tolerance
		bestIdx := -1
		bestDiff := math.Inf(1)
		for i, item := range working {
			if item.SalePrice > remaining+m.config.Tolerance+epsilon {
				continue
			}
			diff := math.Abs(item.SalePrice - remaining)
			if diff < bestDiff {
				bestIdx = i
				bestDiff = diff
			}
		}
		if bestIdx < 0 {
			break
		}

		picked := working[bestIdx]
		combination = append(combination, picked)
		working = append(working[:bestIdx], working[bestIdx+1:]...)
		remaining -= picked.SalePrice

		if math.Abs(remaining) <= m.config.Tolerance+epsilon {
			break
		}
	}

	if len(combination) == 0 {
		return nil
	}
	if math.Abs(target-combination.Total()) > m.config.Tolerance+epsilon {
		return nil
	}

	return combination
}
