package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if handler.telemetry != nil {
		router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Signal classification endpoints
		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)            // POST /api/v1/classify
			classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch
		}

		v1.POST("/intelligence", handler.Intelligence) // POST /api/v1/intelligence

		// Brand vocabulary endpoints
		vocab := v1.Group("/vocabulary")
		{
			vocab.POST("/extract", handler.ExtractVocabulary) // POST /api/v1/vocabulary/extract
			vocab.POST("/overlap", handler.ScoreOverlap)      // POST /api/v1/vocabulary/overlap
		}

		v1.POST("/queries/generate", handler.GenerateQueries) // POST /api/v1/queries/generate

		// Review aggregation endpoints
		reviewsGroup := v1.Group("/reviews")
		{
			reviewsGroup.POST("/aggregate", handler.AggregateReviews) // POST /api/v1/reviews/aggregate
			reviewsGroup.POST("/pain", handler.PainReviews)           // POST /api/v1/reviews/pain
		}

		v1.POST("/trends/match", handler.MatchTrends)    // POST /api/v1/trends/match
		v1.POST("/sources/verify", handler.VerifySource) // POST /api/v1/sources/verify

		// Competitor registry endpoints
		comps := v1.Group("/competitors")
		{
			comps.GET("", handler.ListCompetitors)            // GET /api/v1/competitors
			comps.POST("", handler.RegisterCompetitor)        // POST /api/v1/competitors
			comps.POST("/mentions", handler.ExtractMentions)  // POST /api/v1/competitors/mentions
			comps.POST("/resolve", handler.ResolveCompetitor) // POST /api/v1/competitors/resolve
		}

		v1.GET("/stats", handler.GetStats) // GET /api/v1/stats
	}
}
