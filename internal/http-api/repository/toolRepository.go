package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"toolhub/internal/http-api/models"

	"gorm.io/gorm"
)

// ToolFilter describes one listing request. Filters are conjunctive; the
// search term matches name, description or tags case-insensitively.
type ToolFilter struct {
	Category string
	Language string
	Search   string
	SortBy   string // rating | name | created_at
	Skip     int
	Limit    int
}

type ToolRepo struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) *ToolRepo {
	return &ToolRepo{db: db}
}

// List returns one page of tools, filtered and sorted per the request.
// The rating sort joins a per-tool aggregate so unrated tools always land
// after every rated tool regardless of the store's NULL ordering default.
func (r *ToolRepo) List(ctx context.Context, f ToolFilter) ([]models.Tool, error) {
	db := r.db.WithContext(ctx).Model(&models.Tool{})

	if f.Category != "" {
		db = db.Where("tools.category = ?", f.Category)
	}
	if f.Language != "" {
		db = db.Where("tools.language = ?", f.Language)
	}
	if f.Search != "" {
		p := "%" + strings.ToLower(f.Search) + "%"
		// COALESCE so NULL tags don't drop the row from the disjunction
		db = db.Where("LOWER(tools.name) LIKE ? OR LOWER(tools.description) LIKE ? OR LOWER(COALESCE(tools.tags, '')) LIKE ?", p, p, p)
	}

	switch f.SortBy {
	case "name":
		db = db.Order("tools.name asc")
	case "created_at":
		db = db.Order("tools.created_at desc")
	default: // rating
		agg := r.db.Model(&models.Rating{}).
			Select("tool_id, AVG(rating) AS avg_rating, COUNT(id) AS rating_count").
			Group("tool_id")
		db = db.
			Select("tools.*").
			Joins("LEFT JOIN (?) AS agg ON agg.tool_id = tools.id", agg).
			Order("agg.avg_rating IS NULL, agg.avg_rating DESC, agg.rating_count DESC")
	}

	var list []models.Tool
	if err := db.Offset(f.Skip).Limit(f.Limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return list, nil
}

// Trending returns the tools with the most ratings created since the cutoff,
// most-rated first. Tools without a recent rating are excluded entirely.
func (r *ToolRepo) Trending(ctx context.Context, since time.Time, limit int) ([]models.Tool, error) {
	recent := r.db.Model(&models.Rating{}).
		Select("tool_id, COUNT(id) AS recent_ratings").
		Where("created_at >= ?", since).
		Group("tool_id")

	var list []models.Tool
	err := r.db.WithContext(ctx).Model(&models.Tool{}).
		Select("tools.*").
		Joins("JOIN (?) AS recent ON recent.tool_id = tools.id", recent).
		Order("recent.recent_ratings DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("trending tools: %w", err)
	}
	return list, nil
}

func (r *ToolRepo) GetByID(ctx context.Context, id int64) (*models.Tool, error) {
	var t models.Tool
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ToolRepo) GetByName(ctx context.Context, name string) (*models.Tool, error) {
	var t models.Tool
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ToolRepo) Create(ctx context.Context, t *models.Tool) error {
	// GORM populates t.ID and the timestamps
	return r.db.WithContext(ctx).Create(t).Error
}

// Update persists the full record; updated_at refreshes even when no other
// column changed.
func (r *ToolRepo) Update(ctx context.Context, t *models.Tool) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	return nil
}

func (r *ToolRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Tool{}).Count(&total).Error
	return total, err
}

func (r *ToolRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.Tool{}).
		Distinct().
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return categories, nil
}

func (r *ToolRepo) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tool{}).
		Distinct("category").
		Count(&count).Error
	return count, err
}
