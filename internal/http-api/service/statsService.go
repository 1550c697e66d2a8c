package service

import (
	"context"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/repository"
)

type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	toolRepo   *repository.ToolRepo
	ratingRepo repository.RatingRepository
}

func NewStatsService(toolRepo *repository.ToolRepo, ratingRepo repository.RatingRepository) StatsService {
	return &statsService{
		toolRepo:   toolRepo,
		ratingRepo: ratingRepo,
	}
}

// Stats recomputes the platform totals from stored rows on every call.
func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	totalTools, err := s.toolRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratingRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.toolRepo.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := s.ratingRepo.GlobalAverage(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalTools:    totalTools,
		TotalRatings:  totalRatings,
		Categories:    categories,
		AverageRating: roundedAverage(avg),
	}, nil
}
