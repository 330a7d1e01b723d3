package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/loteplay/loteplay-backend/internal/config"
	"github.com/loteplay/loteplay-backend/internal/handlers"
	"github.com/loteplay/loteplay-backend/internal/middleware"
)

// HandlerDependencies carries the initialized handlers into the router
type HandlerDependencies struct {
	ResultsHandler *handlers.ResultsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Result routes
		results := api.Group("/results")
		{
			results.POST("/process", deps.ResultsHandler.ProcessResults)
			results.GET("/today", deps.ResultsHandler.GetTodayResults)
		}

		// Scheduler routes
		api.GET("/scheduler/status", deps.ResultsHandler.GetSchedulerStatus)
	}

	return router
}
