// Package catalog defines the core value types shared by the matching
// engine and the stock layer: products, price combinations, and
// withdrawal records.
package catalog

import "time"

// Product is a single row of the product catalog. Code uniquely
// identifies a product within one catalog snapshot. Quantity may be
// fractional (items sold by weight).
type Product struct {
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	CostPrice    float64 `json:"cost_price"`
	ProfitMargin float64 `json:"profit_margin"`
	SalePrice    float64 `json:"sale_price"`
}

// Combination is an ordered pick of distinct products whose sale prices
// sum near some target value.
type Combination []Product

// Total returns the summed sale price of the combination.
func (c Combination) Total() float64 {
	total := 0.0
	for _, p := range c {
		total += p.SalePrice
	}
	return total
}

// Codes returns the product codes in combination order.
func (c Combination) Codes() []string {
	codes := make([]string, 0, len(c))
	for _, p := range c {
		codes = append(codes, p.Code)
	}
	return codes
}

// WithdrawalRecord is one append-only ledger entry written for every
// successful stock withdrawal.
type WithdrawalRecord struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity_withdrawn"`
	SalePrice   float64   `json:"sale_price"`
	WithdrawnAt time.Time `json:"withdrawn_at"`
}
