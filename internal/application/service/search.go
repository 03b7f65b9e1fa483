package service

import (
	"math/rand"

	"github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"
)

// FindNearest finds the single eligible item priced closest to target.
// A nil result means nothing eligible was found; that is a normal
// outcome, not an error.
func (s *Service) FindNearest(target float64) (*catalog.Product, error) {
	pool, err := s.buildPool(nil)
	if err != nil {
		return nil, err
	}

	result := s.matcher.Nearest(pool, target)
	if result == nil {
		s.logger.Debug("nearest search found no candidates", "target", target)
	}
	return result, nil
}

// FindNearestN returns up to n eligible items ranked by distance from
// target.
func (s *Service) FindNearestN(target float64, n int) ([]catalog.Product, error) {
	pool, err := s.buildPool(nil)
	if err != nil {
		return nil, err
	}
	return s.matcher.NearestN(pool, target, n), nil
}

// FindCombination assembles a multi-item combination summing to target
// within the configured tolerance. The greedy pass runs first; when it
// misses, the exhaustive fallback takes over. Items whose codes appear
// in usedCodes are left out of the pool. A nil combination means no
// match within tolerance.
func (s *Service) FindCombination(target float64, usedCodes []string) (catalog.Combination, error) {
	return s.findCombination(target, usedCodes, nil)
}

// FindCombinationSeeded is FindCombination with a fixed random source
// for the greedy shuffle, for callers that need reproducible output.
func (s *Service) FindCombinationSeeded(target float64, usedCodes []string, rng *rand.Rand) (catalog.Combination, error) {
	return s.findCombination(target, usedCodes, rng)
}

func (s *Service) findCombination(target float64, usedCodes []string, rng *rand.Rand) (catalog.Combination, error) {
	used := make(map[string]bool, len(usedCodes))
	for _, code := range usedCodes {
		used[code] = true
	}

	pool, err := s.buildPool(used)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	var combination catalog.Combination
	if rng != nil {
		combination = s.matcher.GreedySeeded(pool, target, rng)
	} else {
		combination = s.matcher.Greedy(pool, target)
	}
	if combination != nil {
		s.logger.Debug("greedy search matched", "target", target, "items", len(combination), "total", combination.Total())
		return combination, nil
	}

	combination, err = s.matcher.Exhaustive(pool, target)
	if err != nil {
		return nil, err
	}
	if combination != nil {
		s.logger.Debug("exhaustive search matched", "target", target, "items", len(combination), "total", combination.Total())
	}
	return combination, nil
}

// buildPool reads a fresh catalog snapshot and exclusion list and
// derives the candidate pool for one search.
func (s *Service) buildPool(usedCodes map[string]bool) ([]catalog.Product, error) {
	snapshot, err := s.repo.ListProducts()
	if err != nil {
		return nil, err
	}

	terms, err := s.repo.ListExclusions()
	if err != nil {
		return nil, err
	}

	return s.matcher.BuildPool(snapshot, usedCodes, terms), nil
}
