package repository

import (
	"context"
	"database/sql"

	"toolhub/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListForTool(ctx context.Context, toolID int64) ([]models.Rating, error)
	CountForTool(ctx context.Context, toolID int64) (int64, error)
	AverageForTool(ctx context.Context, toolID int64) (*float64, error)
	CountAll(ctx context.Context) (int64, error)
	GlobalAverage(ctx context.Context) (*float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// ListForTool retrieves all ratings for a tool, oldest first.
func (r *ratingRepository) ListForTool(ctx context.Context, toolID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("tool_id = ?", toolID).
		Order("created_at ASC, id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) CountForTool(ctx context.Context, toolID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("tool_id = ?", toolID).
		Count(&count).Error
	return count, err
}

// AverageForTool returns the unrounded mean, or nil when the tool has no
// ratings.
func (r *ratingRepository) AverageForTool(ctx context.Context, toolID int64) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("tool_id = ?", toolID).
		Select("AVG(rating)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&count).Error
	return count, err
}

// GlobalAverage returns the mean across every rating in the store, or nil
// when no ratings exist anywhere.
func (r *ratingRepository) GlobalAverage(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(rating)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
