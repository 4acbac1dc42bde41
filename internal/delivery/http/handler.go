package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
	"github.com/winepair/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pairings *usecase.PairingService
	experts  *usecase.ExpertPairingService
	feedback *usecase.FeedbackService
}

// NewHandler creates a new HTTP handler. Nil services make their endpoints
// answer 501.
func NewHandler(pairings *usecase.PairingService, experts *usecase.ExpertPairingService, feedback *usecase.FeedbackService) *Handler {
	return &Handler{
		pairings: pairings,
		experts:  experts,
		feedback: feedback,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "winepair-backend",
		"version": "1.0.0",
	})
}

// WinePairings handles GET /pairings/wines?food=
func (h *Handler) WinePairings(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	c.JSON(http.StatusOK, h.pairings.FindWinePairings(c.Query("food")))
}

// FoodPairings handles GET /pairings/foods?wine=
func (h *Handler) FoodPairings(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	c.JSON(http.StatusOK, h.pairings.FindFoodPairings(c.Query("wine")))
}

func (h *Handler) ListWines(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wines": h.pairings.Wines()})
}

func (h *Handler) GetWine(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	wine, err := h.pairings.WineDetails(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}

func (h *Handler) ListFoods(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": h.pairings.Foods()})
}

func (h *Handler) GetFood(c *gin.Context) {
	if h.pairings == nil {
		notConfigured(c, "pairing")
		return
	}
	food, err := h.pairings.FoodDetails(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// ExpertPairings lists curated pairings
func (h *Handler) ExpertPairings(c *gin.Context) {
	if h.experts == nil {
		notConfigured(c, "expert pairing")
		return
	}
	pairings, err := h.experts.ExpertPairings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairings": pairings})
}

// ExpertPairing returns the curated pairing of one wine
func (h *Handler) ExpertPairing(c *gin.Context) {
	if h.experts == nil {
		notConfigured(c, "expert pairing")
		return
	}
	pairing, err := h.experts.ExpertPairing(c.Request.Context(), c.Param("wine"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairing)
}

// AddPairing handles POST /pairings
func (h *Handler) AddPairing(c *gin.Context) {
	if h.experts == nil {
		notConfigured(c, "expert pairing")
		return
	}

	var request domain.AddPairingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	pairing, err := h.experts.AddPairing(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pairing)
}

// SubmitFeedback handles POST /feedback
func (h *Handler) SubmitFeedback(c *gin.Context) {
	if h.feedback == nil {
		notConfigured(c, "feedback")
		return
	}

	var request domain.Feedback
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	saved, err := h.feedback.SubmitFeedback(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// FeedbackForWine handles GET /feedback/:wine
func (h *Handler) FeedbackForWine(c *gin.Context) {
	if h.feedback == nil {
		notConfigured(c, "feedback")
		return
	}
	entries, err := h.feedback.FeedbackForWine(c.Request.Context(), c.Param("wine"))
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []domain.Feedback{}
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}

func notConfigured(c *gin.Context, feature string) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": feature + " service not configured",
	})
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrWineNotFound),
		errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrPairingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogSourceFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog source temporarily unavailable"})
	default:
		logging.Error().
			Err(err).
			Str("request_id", RequestIDFromContext(c)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
