package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// Storage provides SQLite database access for the product catalog, the
// withdrawal ledger, and the exclusion list. It implements the
// Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrStoreUnavailable, dbPath, err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// ListProducts returns the current full catalog snapshot
func (s *Storage) ListProducts() ([]catalog.Product, error) {
	query := `
	SELECT code, description, quantity, cost_price, profit_margin, sale_price
	FROM products
	ORDER BY rowid
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing products: %w", ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		err := rows.Scan(
			&p.Code,
			&p.Description,
			&p.Quantity,
			&p.CostPrice,
			&p.ProfitMargin,
			&p.SalePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product: %w", ErrStoreUnavailable, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing products: %w", ErrStoreUnavailable, err)
	}
	return products, nil
}

// GetProduct retrieves one product by code, nil when absent
func (s *Storage) GetProduct(code string) (*catalog.Product, error) {
	query := `
	SELECT code, description, quantity, cost_price, profit_margin, sale_price
	FROM products WHERE code = ?
	`

	var p catalog.Product
	err := s.db.QueryRow(query, code).Scan(
		&p.Code,
		&p.Description,
		&p.Quantity,
		&p.CostPrice,
		&p.ProfitMargin,
		&p.SalePrice,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading product %s: %w", ErrStoreUnavailable, code, err)
	}

	return &p, nil
}

// UpdateQuantity persists a single stock update
func (s *Storage) UpdateQuantity(code string, quantity float64) error {
	result, err := s.db.Exec(`UPDATE products SET quantity = ? WHERE code = ?`, quantity, code)
	if err != nil {
		return fmt.Errorf("%w: updating stock for %s: %w", ErrStoreUnavailable, code, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updating stock for %s: %w", ErrStoreUnavailable, code, err)
	}
	if affected == 0 {
		return fmt.Errorf("no product with code %s", code)
	}
	return nil
}

// ReplaceProducts swaps the whole catalog in one transaction
func (s *Storage) ReplaceProducts(products []catalog.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: replacing catalog: %w", ErrStoreUnavailable, err)
	}

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: replacing catalog: %w", ErrStoreUnavailable, err)
	}

	insert := `
	INSERT INTO products (code, description, quantity, cost_price, profit_margin, sale_price)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, p := range products {
		_, err := tx.Exec(insert,
			p.Code,
			p.Description,
			p.Quantity,
			p.CostPrice,
			p.ProfitMargin,
			p.SalePrice,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: inserting product %s: %w", ErrStoreUnavailable, p.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: replacing catalog: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// AppendWithdrawal appends one ledger record
func (s *Storage) AppendWithdrawal(record catalog.WithdrawalRecord) error {
	query := `
	INSERT INTO withdrawals (id, code, description, quantity, sale_price, withdrawn_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		record.ID,
		record.Code,
		record.Description,
		record.Quantity,
		record.SalePrice,
		record.WithdrawnAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("%w: appending withdrawal: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// ListWithdrawals returns all ledger records in append order
func (s *Storage) ListWithdrawals() ([]catalog.WithdrawalRecord, error) {
	query := `
	SELECT id, code, description, quantity, sale_price, withdrawn_at
	FROM withdrawals
	ORDER BY rowid
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing withdrawals: %w", ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var records []catalog.WithdrawalRecord
	for rows.Next() {
		var r catalog.WithdrawalRecord
		var withdrawnAt string
		err := rows.Scan(
			&r.ID,
			&r.Code,
			&r.Description,
			&r.Quantity,
			&r.SalePrice,
			&withdrawnAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning withdrawal: %w", ErrStoreUnavailable, err)
		}
		if t, err := time.Parse(time.RFC3339Nano, withdrawnAt); err == nil {
			r.WithdrawnAt = t
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing withdrawals: %w", ErrStoreUnavailable, err)
	}
	return records, nil
}

// ClearWithdrawals deletes the whole ledger
func (s *Storage) ClearWithdrawals() error {
	if _, err := s.db.Exec(`DELETE FROM withdrawals`); err != nil {
		return fmt.Errorf("%w: clearing withdrawals: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// ListExclusions returns all terms in insertion order
func (s *Storage) ListExclusions() ([]string, error) {
	rows, err := s.db.Query(`SELECT term FROM exclusion_terms ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing exclusions: %w", ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("%w: scanning exclusion: %w", ErrStoreUnavailable, err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing exclusions: %w", ErrStoreUnavailable, err)
	}
	return terms, nil
}

// AddExclusion inserts a term, reporting false for duplicates
func (s *Storage) AddExclusion(term string) (bool, error) {
	result, err := s.db.Exec(`INSERT OR IGNORE INTO exclusion_terms (term) VALUES (?)`, term)
	if err != nil {
		return false, fmt.Errorf("%w: adding exclusion: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: adding exclusion: %w", ErrStoreUnavailable, err)
	}
	return affected > 0, nil
}

// RemoveExclusion deletes a term, reporting false when absent
func (s *Storage) RemoveExclusion(term string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM exclusion_terms WHERE term = ?`, term)
	if err != nil {
		return false, fmt.Errorf("%w: removing exclusion: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: removing exclusion: %w", ErrStoreUnavailable, err)
	}
	return affected > 0, nil
}
