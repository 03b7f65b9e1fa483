package matcher

import (
	"math"
	"sort"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// Nearest finds the pool item whose sale price is closest to target.
// Ties break toward the first item encountered, so results are stable
// for a fixed pool ordering. Returns nil when the pool is empty.
func (m *Matcher) Nearest(pool []catalog.Product, target float64) *catalog.Product {
	var best *catalog.Product
	bestDiff := math.Inf(1)

	for i := range pool {
		diff := math.Abs(pool[i].SalePrice - target)
		if diff < bestDiff {
			best = &pool[i]
			bestDiff = diff
		}
	}

	if best == nil {
		return nil
	}

	found := *best
	return &found
}

// NearestN returns up to n pool items sorted ascending by distance from
// target. The sort is stable, so equidistant items keep pool order.
func (m *Matcher) NearestN(pool []catalog.Product, target float64, n int) []catalog.Product {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	ranked := make([]catalog.Product, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].SalePrice-target) < math.Abs(ranked[j].SalePrice-target)
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
