package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/winepair/backend/internal/domain"
)

// PairingStore is a thread-safe in-memory expert pairing repository.
// Pairings are listed in the order their wine was first added.
type PairingStore struct {
	order []string
	data  map[string][]string
	mutex sync.RWMutex
}

// NewPairingStore creates a store seeded with the given pairings
func NewPairingStore(seed []domain.ExpertPairing) *PairingStore {
	store := &PairingStore{
		data: make(map[string][]string, len(seed)),
	}
	for _, p := range seed {
		store.add(p.Wine, p.Foods)
	}
	return store
}

// List returns all pairings
func (s *PairingStore) List(ctx context.Context) ([]domain.ExpertPairing, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	pairings := make([]domain.ExpertPairing, 0, len(s.order))
	for _, wine := range s.order {
		pairings = append(pairings, domain.ExpertPairing{Wine: wine, Foods: slices.Clone(s.data[wine])})
	}
	return pairings, nil
}

// Get returns the pairing for a wine
func (s *PairingStore) Get(ctx context.Context, wine string) (*domain.ExpertPairing, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	foods, exists := s.data[wine]
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrPairingNotFound, wine)
	}
	return &domain.ExpertPairing{Wine: wine, Foods: slices.Clone(foods)}, nil
}

// Add appends foods to a wine's pairing and returns the updated pairing
func (s *PairingStore) Add(ctx context.Context, wine string, foods []string) (*domain.ExpertPairing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.add(wine, foods)
	return &domain.ExpertPairing{Wine: wine, Foods: slices.Clone(s.data[wine])}, nil
}

// add must be called with the write lock held (or during construction)
func (s *PairingStore) add(wine string, foods []string) {
	if _, exists := s.data[wine]; !exists {
		s.order = append(s.order, wine)
	}
	s.data[wine] = append(s.data[wine], foods...)
}

// Size returns the number of wines with pairings
func (s *PairingStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.order)
}

var _ domain.PairingRepository = (*PairingStore)(nil)
