package service

import (
	"context"
	"errors"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/models"
	"toolhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	RateTool(ctx context.Context, toolID int64, in dto.CreateRatingDTO) (*dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	toolRepo   *repository.ToolRepo
}

func NewRatingService(ratingRepo repository.RatingRepository, toolRepo *repository.ToolRepo) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		toolRepo:   toolRepo,
	}
}

// RateTool appends a rating to an existing tool. Ratings are never updated
// or deleted afterwards.
func (s *ratingService) RateTool(ctx context.Context, toolID int64, in dto.CreateRatingDTO) (*dto.RatingResponse, error) {
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		ToolID:   toolID,
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return dto.FromModelToRatingResponse(rating), nil
}
