// Package service wires the matching engine, the stock processor, and
// the repository into the operations exposed to the outer layer.
//
// Every operation re-reads the catalog and exclusion list from the
// repository, so results always reflect the latest persisted state.
// Nothing is cached across calls.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
	"github.com/ageumenezesDev19/DesPensa/internal/domain/matcher"
	"github.com/ageumenezesDev19/DesPensa/internal/domain/stock"
	"github.com/ageumenezesDev19/DesPensa/internal/infrastructure/storage"
)

var (
	// ErrEmptyTerm means an exclusion term was blank after trimming.
	ErrEmptyTerm = errors.New("exclusion term is empty")

	// ErrInvalidProduct means an imported catalog row failed validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// Service exposes the engine's top-level operations.
type Service struct {
	repo      storage.Repository
	matcher   *matcher.Matcher
	processor *stock.Processor
	logger    *slog.Logger
}

// NewService creates the service over a repository.
func NewService(repo storage.Repository, matcherConfig matcher.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:      repo,
		matcher:   matcher.NewMatcher(matcherConfig),
		processor: stock.NewProcessor(repo, repo),
		logger:    logger,
	}
}

// ListProducts returns the current catalog snapshot.
func (s *Service) ListProducts() ([]catalog.Product, error) {
	return s.repo.ListProducts()
}

// GetProduct returns one product by code, nil when absent.
func (s *Service) GetProduct(code string) (*catalog.Product, error) {
	return s.repo.GetProduct(code)
}

// ImportProducts replaces the whole catalog with already-parsed rows.
// The swap is atomic: a validation failure leaves the old catalog alone.
func (s *Service) ImportProducts(products []catalog.Product) error {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.Code == "" {
			return fmt.Errorf("%w: missing code", ErrInvalidProduct)
		}
		if seen[p.Code] {
			return fmt.Errorf("%w: duplicate code %s", ErrInvalidProduct, p.Code)
		}
		seen[p.Code] = true
		if p.SalePrice <= 0 || p.CostPrice < 0 {
			return fmt.Errorf("%w: %s has a non-positive price", ErrInvalidProduct, p.Code)
		}
		if p.Quantity < 0 {
			return fmt.Errorf("%w: %s has negative stock", ErrInvalidProduct, p.Code)
		}
	}

	if err := s.repo.ReplaceProducts(products); err != nil {
		return err
	}

	s.logger.Info("catalog imported", "products", len(products))
	return nil
}

// Withdraw removes qty units of the coded product from stock and
// records the withdrawal.
func (s *Service) Withdraw(code string, qty float64) (*stock.Confirmation, error) {
	snapshot, err := s.repo.ListProducts()
	if err != nil {
		return nil, err
	}

	conf, err := s.processor.Withdraw(snapshot, code, qty)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock withdrawn", "code", conf.Code, "quantity", conf.Quantity, "new_stock", conf.NewStock)
	return conf, nil
}

// ListWithdrawals returns the full withdrawal ledger in append order.
func (s *Service) ListWithdrawals() ([]catalog.WithdrawalRecord, error) {
	return s.repo.ListWithdrawals()
}

// ClearWithdrawals empties the withdrawal ledger.
func (s *Service) ClearWithdrawals() error {
	if err := s.repo.ClearWithdrawals(); err != nil {
		return err
	}
	s.logger.Info("withdrawal ledger cleared")
	return nil
}

// Exclusions returns the exclusion terms in insertion order.
func (s *Service) Exclusions() ([]string, error) {
	return s.repo.ListExclusions()
}

// AddExclusion adds a term to the exclusion list. Returns false when the
// term was already present.
func (s *Service) AddExclusion(term string) (bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return false, ErrEmptyTerm
	}
	return s.repo.AddExclusion(term)
}

// RemoveExclusion removes a term. Returns false when it was not present.
func (s *Service) RemoveExclusion(term string) (bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return false, ErrEmptyTerm
	}
	return s.repo.RemoveExclusion(term)
}
