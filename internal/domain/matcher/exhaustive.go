package matcher

import (
	"math"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// Exhaustive is the fallback when Greedy misses: it enumerates every
// subset of size 2 through MaxItems and keeps the one with the smallest
// |sum - target| within tolerance. Single items are deliberately not
// considered here; that is Nearest's job. An exact match (diff zero)
// stops the entire search, including larger subset sizes.
//
// The pool must not exceed MaxExhaustivePool; enumeration is
// combinatorial and refusing up front beats running unbounded.
func (m *Matcher) Exhaustive(pool []catalog.Product, target float64) (catalog.Combination, error) {
	if len(pool) > m.config.MaxExhaustivePool {
		return nil, ErrSearchTooLarge
	}
	if len(pool) < 2 {
		return nil, nil
	}

	var best catalog.Combination
	bestDiff := math.Inf(1)

	maxSize := m.config.MaxItems
	if maxSize > len(pool) {
		maxSize = len(pool)
	}

	subset := make([]catalog.Product, 0, maxSize)

	var enumerate func(start int, size int, sum float64) bool
	enumerate = func(start, size int, sum float64) bool {
		if len(subset) == size {
			diff := math.Abs(sum - target)
			if diff <= m.config.Tolerance+epsilon && diff < bestDiff {
				best = append(catalog.Combination(nil), subset...)
				bestDiff = diff
				if diff == 0 {
					return true
				}
			}
			return false
		}
		for i := start; i < len(pool); i++ {
			subset = append(subset, pool[i])
			exact := enumerate(i+1, size, sum+pool[i].SalePrice)
			subset = subset[:len(subset)-1]
			if exact {
				return true
			}
		}
		return false
	}

	for size := 2; size <= maxSize; size++ {
		if enumerate(0, size, 0) {
			break
		}
	}

	if best == nil {
		return nil, nil
	}
	return best, nil
}
