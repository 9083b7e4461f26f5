package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	sessionHandler *handler.SessionHandler,
	hugHandler *handler.HugHandler,
	creditHandler *handler.CreditHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes. Every route resolves a caller identity; anonymous
	// callers get a per-request id.
	apiV1 := h.Group("/api/v1")
	apiV1.Use(middleware.Identity())
	{
		// Creative flow sessions
		sessions := apiV1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("/:sessionId", sessionHandler.Get)
			sessions.PATCH("/:sessionId", sessionHandler.Update)
			sessions.DELETE("/:sessionId", sessionHandler.Delete)

			// Ingredient and descriptor sub-resources
			sessions.POST("/:sessionId/ingredients", sessionHandler.AddIngredient)
			sessions.DELETE("/:sessionId/ingredients/:id", sessionHandler.RemoveIngredient)
			sessions.PUT("/:sessionId/descriptors", sessionHandler.UpdateDescriptors)

			// Stage transitions
			sessions.POST("/:sessionId/advance", sessionHandler.Advance)
			sessions.POST("/:sessionId/back", sessionHandler.Back)
			sessions.POST("/:sessionId/reset", sessionHandler.Reset)
		}

		// AI composition. Weave, stitch and regenerate are credit-gated;
		// prompt generation is free.
		ai := apiV1.Group("/ai")
		{
			ai.POST("/weave", hugHandler.Weave)
			ai.POST("/stitch", hugHandler.Stitch)
			ai.POST("/regenerate", hugHandler.Regenerate)
			ai.POST("/prompts", hugHandler.GeneratePrompts)
		}

		// Credit ledger
		credits := apiV1.Group("/credits")
		{
			credits.GET("", creditHandler.Balance)
			credits.POST("", creditHandler.Add)
		}
	}
}
