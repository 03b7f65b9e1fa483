package storage

import (
	"errors"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// ErrStoreUnavailable wraps any backing-store I/O failure. Callers can
// errors.Is against it without caring about the driver underneath.
var ErrStoreUnavailable = errors.New("store unavailable")

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	ProductRepository
	WithdrawalRepository
	ExclusionRepository
	Close() error
}

// ProductRepository handles catalog reads and stock updates
type ProductRepository interface {
	// ListProducts returns the current full catalog snapshot
	ListProducts() ([]catalog.Product, error)

	// GetProduct retrieves one product by code; nil when absent
	GetProduct(code string) (*catalog.Product, error)

	// UpdateQuantity persists a single stock update
	UpdateQuantity(code string, quantity float64) error

	// ReplaceProducts swaps the whole catalog atomically
	ReplaceProducts(products []catalog.Product) error
}

// WithdrawalRepository is the append-only withdrawal ledger
type WithdrawalRepository interface {
	// AppendWithdrawal appends one record, preserving append order
	AppendWithdrawal(record catalog.WithdrawalRecord) error

	// ListWithdrawals returns all records in append order
	ListWithdrawals() ([]catalog.WithdrawalRecord, error)

	// ClearWithdrawals deletes the whole ledger
	ClearWithdrawals() error
}

// ExclusionRepository manages the description exclusion terms
type ExclusionRepository interface {
	// ListExclusions returns all terms in insertion order
	ListExclusions() ([]string, error)

	// AddExclusion inserts a term; false when it already exists
	AddExclusion(term string) (bool, error)

	// RemoveExclusion deletes a term; false when it was not present
	RemoveExclusion(term string) (bool, error)
}
