package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
)

// ExpertPairingService manages curated wine -> food pairings
type ExpertPairingService struct {
	repo domain.PairingRepository
}

// NewExpertPairingService creates a service backed by repo
func NewExpertPairingService(repo domain.PairingRepository) *ExpertPairingService {
	return &ExpertPairingService{repo: repo}
}

// ExpertPairings lists every curated pairing in insertion order
func (s *ExpertPairingService) ExpertPairings(ctx context.Context) ([]domain.ExpertPairing, error) {
	return s.repo.List(ctx)
}

// ExpertPairing returns the curated pairing for a wine
func (s *ExpertPairingService) ExpertPairing(ctx context.Context, wine string) (*domain.ExpertPairing, error) {
	wine = strings.TrimSpace(wine)
	if wine == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.repo.Get(ctx, wine)
}

// AddPairing appends foods to a wine's curated pairing, creating it if needed
func (s *ExpertPairingService) AddPairing(ctx context.Context, request *domain.AddPairingRequest) (*domain.ExpertPairing, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	wine := strings.TrimSpace(request.Wine)
	if wine == "" {
		return nil, fmt.Errorf("%w: wine is required", domain.ErrInvalidRequest)
	}

	foods := make([]string, 0, len(request.Foods))
	for _, f := range request.Foods {
		if f = strings.TrimSpace(f); f != "" {
			foods = append(foods, f)
		}
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("%w: at least one food is required", domain.ErrInvalidRequest)
	}

	pairing, err := s.repo.Add(ctx, wine, foods)
	if err != nil {
		return nil, err
	}

	logging.Info().Str("wine", wine).Strs("foods", foods).Msg("expert pairing added")
	return pairing, nil
}
