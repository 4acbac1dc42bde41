package usecase

import (
	"fmt"

	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
	"github.com/winepair/backend/internal/metrics"
)

// PairingService answers food -> wine and wine -> food queries.
// Both queries are total: every input yields a PairingResult.
type PairingService struct {
	catalog domain.Catalog
	engine  *Engine
}

// NewPairingService creates a pairing service over the given catalog
func NewPairingService(c domain.Catalog, config EngineConfig) *PairingService {
	return &PairingService{
		catalog: c,
		engine:  NewEngine(c, config),
	}
}

// FindWinePairings recommends wines for free-text food.
// Flow: catalog lookup -> score wines -> keyword table -> default wines
func (s *PairingService) FindWinePairings(food string) domain.PairingResult {
	query := NormalizeQuery(food)

	result := s.findWinePairings(query)
	metrics.RecordPairingQuery(string(domain.DirectionFoodToWine), string(result.Strategy))
	logging.Debug().
		Str("food", query).
		Str("strategy", string(result.Strategy)).
		Strs("items", result.Items).
		Msg("wine pairing query")

	return result
}

func (s *PairingService) findWinePairings(query string) domain.PairingResult {
	if profile, ok := s.catalog.LookupFood(query); ok {
		if candidates := s.engine.ScoreWines(profile); len(candidates) > 0 {
			return buildResult(candidates)
		}
	}

	if result, ok := s.engine.KeywordPairing(query); ok {
		return result
	}
	return DefaultWines()
}

// FindFoodPairings recommends foods for a wine name (exact match).
// A known wine returns its scored result even when empty.
func (s *PairingService) FindFoodPairings(wine string) domain.PairingResult {
	result := s.findFoodPairings(wine)
	metrics.RecordPairingQuery(string(domain.DirectionWineToFood), string(result.Strategy))
	logging.Debug().
		Str("wine", wine).
		Str("strategy", string(result.Strategy)).
		Strs("items", result.Items).
		Msg("food pairing query")

	return result
}

func (s *PairingService) findFoodPairings(wine string) domain.PairingResult {
	profile, ok := s.catalog.LookupWine(wine)
	if !ok {
		return DefaultFoods()
	}
	return buildResult(s.engine.ScoreFoods(profile))
}

// WineDetails returns the catalog profile for a wine
func (s *PairingService) WineDetails(name string) (domain.WineProfile, error) {
	wine, ok := s.catalog.LookupWine(name)
	if !ok {
		return domain.WineProfile{}, fmt.Errorf("%w: %q", domain.ErrWineNotFound, name)
	}
	return wine, nil
}

// FoodDetails returns the catalog profile for a food
func (s *PairingService) FoodDetails(name string) (domain.FoodProfile, error) {
	food, ok := s.catalog.LookupFood(name)
	if !ok {
		return domain.FoodProfile{}, fmt.Errorf("%w: %q", domain.ErrFoodNotFound, name)
	}
	return food, nil
}

// Wines lists the wine catalog
func (s *PairingService) Wines() []domain.WineProfile {
	return s.catalog.Wines()
}

// Foods lists the food catalog
func (s *PairingService) Foods() []domain.FoodProfile {
	return s.catalog.Foods()
}
