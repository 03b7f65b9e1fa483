// Package stock validates and applies stock withdrawals against the
// product catalog, writing one ledger record per successful withdrawal.
package stock

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

var (
	// ErrNotFound means no product with the requested code exists.
	ErrNotFound = errors.New("product not found")

	// ErrInvalidQuantity means the requested quantity is non-positive or
	// exceeds current stock.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// CatalogWriter persists a single stock update.
type CatalogWriter interface {
	UpdateQuantity(code string, quantity float64) error
}

// Ledger appends withdrawal records in order and never loses one.
type Ledger interface {
	AppendWithdrawal(record catalog.WithdrawalRecord) error
}

// Confirmation reports a completed withdrawal.
type Confirmation struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	NewStock    float64 `json:"new_stock"`
	Message     string  `json:"message"`
}

// Processor applies withdrawals. It is the only mutating path in the
// engine and is not idempotent: repeating a withdrawal decrements stock
// again until stock runs out.
//
// The read-then-persist sequence is not atomic; concurrent withdrawals
// of the same product against a shared store can lose an update. Callers
// needing that guarantee must serialize around Withdraw.
type Processor struct {
	writer CatalogWriter
	ledger Ledger
}

// NewProcessor creates a withdrawal processor over the given writer and
// ledger.
func NewProcessor(writer CatalogWriter, ledger Ledger) *Processor {
	return &Processor{
		writer: writer,
		ledger: ledger,
	}
}

// Withdraw takes qty units of the coded product out of the snapshot's
// stock. Validation failures return ErrNotFound or ErrInvalidQuantity
// and leave stock untouched.
func (p *Processor) Withdraw(snapshot []catalog.Product, code string, qty float64) (*Confirmation, error) {
	var product *catalog.Product
	for i := range snapshot {
		if snapshot[i].Code == code {
			product = &snapshot[i]
			break
		}
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	if qty <= 0 || qty > product.Quantity {
		return nil, fmt.Errorf("%w: requested %g of %g in stock", ErrInvalidQuantity, qty, product.Quantity)
	}

	newStock := product.Quantity - qty
	if err := p.writer.UpdateQuantity(product.Code, newStock); err != nil {
		return nil, fmt.Errorf("updating stock for %s: %w", product.Code, err)
	}

	record := catalog.WithdrawalRecord{
		ID:          uuid.NewString(),
		Code:        product.Code,
		Description: product.Description,
		Quantity:    qty,
		SalePrice:   product.SalePrice,
		WithdrawnAt: time.Now(),
	}
	if err := p.ledger.AppendWithdrawal(record); err != nil {
		return nil, fmt.Errorf("recording withdrawal for %s: %w", product.Code, err)
	}

	return &Confirmation{
		Code:        product.Code,
		Description: product.Description,
		Quantity:    qty,
		NewStock:    newStock,
		Message:     fmt.Sprintf("%g unit(s) of %q withdrawn", qty, product.Description),
	}, nil
}
