package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes nests rating routes under the tools group.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:tool_id/ratings")
	{
		ratings.POST("", h.Create)
	}
}

// Create submits a rating for a tool
// POST /api/tools/:tool_id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	toolID, err := strconv.ParseInt(c.Param("tool_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool id"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, err := h.ratingService.RateTool(ctx, toolID, req)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rating)
}
