package storage

import (
	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// MockRepository is an in-memory implementation of Repository for testing.
// It stores all data in maps and slices, making tests fast and isolated.
type MockRepository struct {
	products    []catalog.Product
	withdrawals []catalog.WithdrawalRecord
	exclusions  []string

	// Hooks for test assertions
	ListProductsCalled   bool
	ListProductsCalls    int
	UpdateQuantityCalled bool
	LastUpdatedCode      string
	LastUpdatedQuantity  float64
	AppendCalled         bool
	LastAppendedRecord   *catalog.WithdrawalRecord

	// Error injection for testing error paths
	ListProductsErr    error
	GetProductErr      error
	UpdateQuantityErr  error
	ReplaceProductsErr error
	AppendErr          error
	ListWithdrawalsErr error
	ListExclusionsErr  error
	AddExclusionErr    error
	RemoveExclusionErr error
}

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// Close does nothing for mock
func (m *MockRepository) Close() error {
	return nil
}

// SeedProducts replaces the in-memory catalog without bookkeeping
func (m *MockRepository) SeedProducts(products []catalog.Product) {
	m.products = append([]catalog.Product(nil), products...)
}

// SeedExclusions replaces the in-memory exclusion list
func (m *MockRepository) SeedExclusions(terms []string) {
	m.exclusions = append([]string(nil), terms...)
}

// Withdrawals exposes the appended ledger records for assertions
func (m *MockRepository) Withdrawals() []catalog.WithdrawalRecord {
	return m.withdrawals
}

// ListProducts returns a copy of the in-memory catalog
func (m *MockRepository) ListProducts() ([]catalog.Product, error) {
	m.ListProductsCalled = true
	m.ListProductsCalls++
	if m.ListProductsErr != nil {
		return nil, m.ListProductsErr
	}
	return append([]catalog.Product(nil), m.products...), nil
}

// GetProduct finds a product by code, nil when absent
func (m *MockRepository) GetProduct(code string) (*catalog.Product, error) {
	if m.GetProductErr != nil {
		return nil, m.GetProductErr
	}
	for i := range m.products {
		if m.products[i].Code == code {
			found := m.products[i]
			return &found, nil
		}
	}
	return nil, nil
}

// UpdateQuantity updates a product's stock in memory
func (m *MockRepository) UpdateQuantity(code string, quantity float64) error {
	m.UpdateQuantityCalled = true
	m.LastUpdatedCode = code
	m.LastUpdatedQuantity = quantity
	if m.UpdateQuantityErr != nil {
		return m.UpdateQuantityErr
	}
	for i := range m.products {
		if m.products[i].Code == code {
			m.products[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// ReplaceProducts swaps the in-memory catalog
func (m *MockRepository) ReplaceProducts(products []catalog.Product) error {
	if m.ReplaceProductsErr != nil {
		return m.ReplaceProductsErr
	}
	m.SeedProducts(products)
	return nil
}

// AppendWithdrawal appends a ledger record in memory
func (m *MockRepository) AppendWithdrawal(record catalog.WithdrawalRecord) error {
	m.AppendCalled = true
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.withdrawals = append(m.withdrawals, record)
	m.LastAppendedRecord = &m.withdrawals[len(m.withdrawals)-1]
	return nil
}

// ListWithdrawals returns the in-memory ledger
func (m *MockRepository) ListWithdrawals() ([]catalog.WithdrawalRecord, error) {
	if m.ListWithdrawalsErr != nil {
		return nil, m.ListWithdrawalsErr
	}
	return append([]catalog.WithdrawalRecord(nil), m.withdrawals...), nil
}

// ClearWithdrawals empties the in-memory ledger
func (m *MockRepository) ClearWithdrawals() error {
	m.withdrawals = nil
	return nil
}

// ListExclusions returns the in-memory term list
func (m *MockRepository) ListExclusions() ([]string, error) {
	if m.ListExclusionsErr != nil {
		return nil, m.ListExclusionsErr
	}
	return append([]string(nil), m.exclusions...), nil
}

// AddExclusion inserts a term, false on duplicates
func (m *MockRepository) AddExclusion(term string) (bool, error) {
	if m.AddExclusionErr != nil {
		return false, m.AddExclusionErr
	}
	for _, existing := range m.exclusions {
		if existing == term {
			return false, nil
		}
	}
	m.exclusions = append(m.exclusions, term)
	return true, nil
}

// RemoveExclusion deletes a term, false when absent
func (m *MockRepository) RemoveExclusion(term string) (bool, error) {
	if m.RemoveExclusionErr != nil {
		return false, m.RemoveExclusionErr
	}
	for i, existing := range m.exclusions {
		if existing == term {
			m.exclusions = append(m.exclusions[:i], m.exclusions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
