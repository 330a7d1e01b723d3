package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loteplay/loteplay-backend/internal/scheduler"
	"github.com/loteplay/loteplay-backend/internal/services"
)

// ResultsHandler handles result-processing HTTP requests
type ResultsHandler struct {
	resultsService services.ResultsService
	sched          *scheduler.Scheduler
}

// NewResultsHandler creates a new ResultsHandler
func NewResultsHandler(resultsService services.ResultsService, sched *scheduler.Scheduler) *ResultsHandler {
	return &ResultsHandler{
		resultsService: resultsService,
		sched:          sched,
	}
}

// ProcessResults handles POST /results/process. The optional "target" query
// parameter narrows the run to one category; the default sweeps both.
func (h *ResultsHandler) ProcessResults(c *gin.Context) {
	target := c.DefaultQuery("target", "all")

	switch target {
	case "all":
		summary := h.resultsService.ProcessAllResults(c.Request.Context())
		c.JSON(http.StatusOK, summary)
	case "animalitos":
		summary := h.resultsService.ProcessAnimalitoResults(c.Request.Context())
		c.JSON(http.StatusOK, summary)
	case "lotteries":
		summary := h.resultsService.ProcessLotteryResults(c.Request.Context())
		c.JSON(http.StatusOK, summary)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be one of: all, animalitos, lotteries"})
	}
}

// GetTodayResults handles GET /results/today
func (h *ResultsHandler) GetTodayResults(c *gin.Context) {
	results, err := h.resultsService.GetTodayResults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve today's results: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetSchedulerStatus handles GET /scheduler/status
func (h *ResultsHandler) GetSchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"triggers": h.sched.Status()})
}
