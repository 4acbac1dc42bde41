// Package memory provides thread-safe in-memory repositories for expert
// pairings and user feedback.
package memory

import (
	"context"
	"sync"

	"github.com/winepair/backend/internal/domain"
)

// FeedbackStore is a thread-safe in-memory feedback repository
type FeedbackStore struct {
	byWine map[string][]domain.Feedback
	mutex  sync.RWMutex
}

// NewFeedbackStore creates an empty feedback store
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{
		byWine: make(map[string][]domain.Feedback),
	}
}

// Save stores a copy of feedback
func (s *FeedbackStore) Save(ctx context.Context, feedback *domain.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if feedback == nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.byWine[feedback.Wine] = append(s.byWine[feedback.Wine], *feedback)
	return nil
}

// ListByWine returns feedback for a wine in submission order.
// An unknown wine yields an empty list.
func (s *FeedbackStore) ListByWine(ctx context.Context, wine string) ([]domain.Feedback, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored := s.byWine[wine]
	out := make([]domain.Feedback, len(stored))
	copy(out, stored)
	return out, nil
}

// Size returns the total number of stored feedback entries
func (s *FeedbackStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := 0
	for _, entries := range s.byWine {
		n += len(entries)
	}
	return n
}

var _ domain.FeedbackRepository = (*FeedbackStore)(nil)
