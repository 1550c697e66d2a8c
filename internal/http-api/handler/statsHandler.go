package handler

import (
	"context"
	"net/http"
	"time"

	"toolhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the platform-wide endpoints: category listing and
// aggregate statistics.
type StatsHandler struct {
	toolService  service.ToolService
	statsService service.StatsService
}

func NewStatsHandler(toolService service.ToolService, statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		toolService:  toolService,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.Categories)
	rg.GET("/stats", h.Stats)
}

// Categories returns all distinct category strings
// GET /api/categories
func (h *StatsHandler) Categories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.toolService.Categories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Stats returns platform totals, recomputed from stored rows
// GET /api/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.statsService.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
