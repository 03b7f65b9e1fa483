package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// Helper to create a test product
func makeProduct(code, description string, price, margin, qty float64) catalog.Product {
	return catalog.Product{
		Code:         code,
		Description:  description,
		Quantity:     qty,
		CostPrice:    price - margin,
		ProfitMargin: margin,
		SalePrice:    price,
	}
}

func TestFilterExcluded_CaseInsensitiveSubstring(t *testing.T) {
	// Arrange
	items := []catalog.Product{
		makeProduct("A", "Arroz Branco 5kg", 25.00, 2, 10),
		makeProduct("B", "CERVEJA Lata 350ml", 4.50, 1, 30),
		makeProduct("C", "Feijao Preto 1kg", 8.00, 1, 12),
	}

	// Act
	filtered := FilterExcluded(items, []string{"cerveja"})

	// Assert
	assert.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Code)
	assert.Equal(t, "C", filtered[1].Code)
}

func TestFilterExcluded_EmptyTerms_NoOp(t *testing.T) {
	items := []catalog.Product{
		makeProduct("A", "Arroz", 25.00, 2, 10),
	}

	filtered := FilterExcluded(items, nil)

	assert.Equal(t, items, filtered)
}

func TestFilterExcluded_EmptyDescription_NeverMatches(t *testing.T) {
	items := []catalog.Product{
		makeProduct("A", "", 25.00, 2, 10),
	}

	filtered := FilterExcluded(items, []string{"arroz"})

	assert.Len(t, filtered, 1)
}

func TestFilterExcluded_PreservesOrder(t *testing.T) {
	items := []catalog.Product{
		makeProduct("C", "Feijao", 8.00, 1, 12),
		makeProduct("A", "Arroz", 25.00, 2, 10),
		makeProduct("B", "Oleo", 7.50, 1, 5),
	}

	filtered := FilterExcluded(items, []string{"nothing"})

	assert.Equal(t, []string{"C", "A", "B"}, catalog.Combination(filtered).Codes())
}

func TestBuildPool_EligibilityFilter(t *testing.T) {
	// Arrange
	m := NewMatcher(DefaultConfig())
	snapshot := []catalog.Product{
		makeProduct("A", "Arroz", 25.00, 2, 10),
		makeProduct("B", "Feijao", 8.00, 0, 12),   // No margin
		makeProduct("C", "Oleo", 7.50, 1, 0),      // No stock
		makeProduct("D", "Acucar", 5.00, -1, 8),   // Negative margin
		makeProduct("E", "Cafe", 18.00, 3, 0.5),   // Fractional stock below 1
		makeProduct("F", "Farinha", 6.00, 1, 1),   // Exactly 1 in stock
	}

	// Act
	pool := m.BuildPool(snapshot, nil, nil)

	// Assert
	assert.Equal(t, []string{"A", "F"}, catalog.Combination(pool).Codes())
}

func TestBuildPool_UsedCodesRemoved(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	snapshot := []catalog.Product{
		makeProduct("A", "Arroz", 25.00, 2, 10),
		makeProduct("B", "Feijao", 8.00, 1, 12),
	}

	pool := m.BuildPool(snapshot, map[string]bool{"A": true}, nil)

	assert.Len(t, pool, 1)
	assert.Equal(t, "B", pool[0].Code)
}

func TestBuildPool_Empty_IsNormal(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	pool := m.BuildPool(nil, nil, nil)

	assert.Empty(t, pool)
}
