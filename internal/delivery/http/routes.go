package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/winepair/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		pairings := v1.Group("/pairings")
		{
			pairings.GET("/wines", handler.WinePairings)
			pairings.GET("/foods", handler.FoodPairings)
			pairings.GET("/expert", handler.ExpertPairings)
			pairings.GET("/expert/:wine", handler.ExpertPairing)
			pairings.POST("", handler.AddPairing)
		}

		v1.GET("/wines", handler.ListWines)
		v1.GET("/wines/:name", handler.GetWine)
		v1.GET("/foods", handler.ListFoods)
		v1.GET("/foods/:name", handler.GetFood)

		feedback := v1.Group("/feedback")
		{
			feedback.POST("", handler.SubmitFeedback)
			feedback.GET("/:wine", handler.FeedbackForWine)
		}
	}

	return router
}
