package matcher

import (
	"strings"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// FilterExcluded removes every product whose description contains any of
// the given terms as a case-insensitive substring. Order is preserved.
// An empty term list is a no-op.
func FilterExcluded(items []catalog.Product, terms []string) []catalog.Product {
	if len(terms) == 0 {
		return items
	}

	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(term))
	}

	filtered := make([]catalog.Product, 0, len(items))
	for _, item := range items {
		desc := strings.ToLower(item.Description)
		excluded := false
		for _, term := range lowered {
			if strings.Contains(desc, term) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// BuildPool derives the candidate pool for one search from a full catalog
// snapshot. Applied in order: profitability/stock eligibility, exclusion
// terms, already-used codes. An empty result is a normal outcome.
func (m *Matcher) BuildPool(snapshot []catalog.Product, usedCodes map[string]bool, terms []string) []catalog.Product {
	eligible := make([]catalog.Product, 0, len(snapshot))
	for _, item := range snapshot {
		if item.ProfitMargin > 0 && item.Quantity >= 1 {
			eligible = append(eligible, item)
		}
	}

	eligible = FilterExcluded(eligible, terms)

	if len(usedCodes) == 0 {
		return eligible
	}

	pool := make([]catalog.Product, 0, len(eligible))
	for _, item := range eligible {
		if usedCodes[item.Code] {
			continue
		}
		pool = append(pool, item)
	}

	return pool
}
