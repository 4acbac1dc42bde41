package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
)

const (
	minRating = 1
	maxRating = 5
)

// FeedbackService records user ratings of pairings
type FeedbackService struct {
	repo domain.FeedbackRepository
	now  func() time.Time
}

// NewFeedbackService creates a feedback service backed by repo
func NewFeedbackService(repo domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now}
}

// SubmitFeedback validates and stores feedback, assigning its ID and timestamp
func (s *FeedbackService) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error) {
	feedback.UserID = strings.TrimSpace(feedback.UserID)
	feedback.Wine = strings.TrimSpace(feedback.Wine)
	feedback.Food = strings.TrimSpace(feedback.Food)

	if feedback.UserID == "" || feedback.Wine == "" {
		return nil, fmt.Errorf("%w: userId and wine are required", domain.ErrInvalidRequest)
	}
	if feedback.Rating < minRating || feedback.Rating > maxRating {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidRating, feedback.Rating)
	}

	feedback.ID = uuid.NewString()
	feedback.CreatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, &feedback); err != nil {
		logging.Error().Err(err).Str("wine", feedback.Wine).Msg("could not save feedback")
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	logging.Info().
		Str("id", feedback.ID).
		Str("wine", feedback.Wine).
		Int("rating", feedback.Rating).
		Msg("feedback submitted")
	return &feedback, nil
}

// FeedbackForWine lists feedback for a wine in submission order
func (s *FeedbackService) FeedbackForWine(ctx context.Context, wine string) ([]domain.Feedback, error) {
	wine = strings.TrimSpace(wine)
	if wine == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.repo.ListByWine(ctx, wine)
}
