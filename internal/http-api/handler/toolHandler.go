package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

var validSortBy = map[string]bool{"rating": true, "name": true, "created_at": true}

type ToolHandler struct {
	svc service.ToolService
}

func NewToolHandler(svc service.ToolService) *ToolHandler {
	return &ToolHandler{svc: svc}
}

func (h *ToolHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/trending", h.Trending)
	rg.GET("/:tool_id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:tool_id", h.Update)
}

func (h *ToolHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	q := dto.ToolQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Language: strings.TrimSpace(c.Query("language")),
		Search:   strings.TrimSpace(c.Query("search")),
		SortBy:   "rating",
		Skip:     0,
		Limit:    20,
	}

	if s := c.Query("skip"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter, must be >= 0"})
			return
		}
		q.Skip = parsed
	}

	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter, must be between 1 and 100"})
			return
		}
		q.Limit = parsed
	}

	if sb := strings.TrimSpace(c.Query("sort_by")); sb != "" {
		if !validSortBy[sb] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort_by, must be one of: rating, name, created_at"})
			return
		}
		q.SortBy = sb
	}

	list, err := h.svc.List(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ToolHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("tool_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tool, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h *ToolHandler) Create(c *gin.Context) {
	var in dto.CreateToolDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateToolName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tool with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ToolHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("tool_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool id"})
		return
	}

	var in dto.UpdateToolDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrToolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		case errors.Is(err, service.ErrDuplicateToolName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tool with this name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ToolHandler) Trending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	limit := 10
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter, must be between 1 and 50"})
			return
		}
		limit = parsed
	}

	list, err := h.svc.Trending(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
