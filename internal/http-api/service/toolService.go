package service

import (
	"context"
	"errors"
	"time"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/models"
	"toolhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// trendingWindow is how far back a rating still counts toward trending rank.
const trendingWindow = 30 * 24 * time.Hour

type ToolService interface {
	List(ctx context.Context, q dto.ToolQuery) ([]dto.ToolListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ToolResponse, error)
	Create(ctx context.Context, in dto.CreateToolDTO) (*dto.ToolResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateToolDTO) (*dto.ToolResponse, error)
	Trending(ctx context.Context, limit int) ([]dto.ToolListResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type toolService struct {
	toolRepo   *repository.ToolRepo
	ratingRepo repository.RatingRepository
}

func NewToolService(toolRepo *repository.ToolRepo, ratingRepo repository.RatingRepository) ToolService {
	return &toolService{
		toolRepo:   toolRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *toolService) List(ctx context.Context, q dto.ToolQuery) ([]dto.ToolListResponse, error) {
	tools, err := s.toolRepo.List(ctx, repository.ToolFilter{
		Category: q.Category,
		Language: q.Language,
		Search:   q.Search,
		SortBy:   q.SortBy,
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, err
	}
	return s.enrichListPage(ctx, tools)
}

func (s *toolService) GetByID(ctx context.Context, id int64) (*dto.ToolResponse, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	return s.assembleDetail(ctx, tool)
}

// Create inserts a new tool after a friendly name pre-check. A racing insert
// with the same name slips past the check and trips the unique index instead;
// both paths report the same conflict.
func (s *toolService) Create(ctx context.Context, in dto.CreateToolDTO) (*dto.ToolResponse, error) {
	if _, err := s.toolRepo.GetByName(ctx, in.Name); err == nil {
		return nil, ErrDuplicateToolName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tool := in.ToModel()
	if err := s.toolRepo.Create(ctx, &tool); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateToolName
		}
		return nil, err
	}

	resp := dto.FromModelToResponse(tool, nil, []dto.RatingResponse{})
	return &resp, nil
}

func (s *toolService) Update(ctx context.Context, id int64, in dto.UpdateToolDTO) (*dto.ToolResponse, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	in.ApplyTo(tool)
	if err := s.toolRepo.Update(ctx, tool); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateToolName
		}
		return nil, err
	}

	return s.assembleDetail(ctx, tool)
}

func (s *toolService) Trending(ctx context.Context, limit int) ([]dto.ToolListResponse, error) {
	since := time.Now().Add(-trendingWindow)
	tools, err := s.toolRepo.Trending(ctx, since, limit)
	if err != nil {
		return nil, err
	}
	// response aggregates stay all-time even though rank is recency-based
	return s.enrichListPage(ctx, tools)
}

func (s *toolService) Categories(ctx context.Context) ([]string, error) {
	return s.toolRepo.DistinctCategories(ctx)
}

// enrichListPage recomputes per-tool aggregates for every tool on the page.
func (s *toolService) enrichListPage(ctx context.Context, tools []models.Tool) ([]dto.ToolListResponse, error) {
	resp := make([]dto.ToolListResponse, 0, len(tools))
	for _, t := range tools {
		avg, err := s.ratingRepo.AverageForTool(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		count, err := s.ratingRepo.CountForTool(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, dto.FromModelToListResponse(t, roundedAverage(avg), count))
	}
	return resp, nil
}

func (s *toolService) assembleDetail(ctx context.Context, tool *models.Tool) (*dto.ToolResponse, error) {
	ratings, err := s.ratingRepo.ListForTool(ctx, tool.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToResponse(*tool, averageOf(ratings), toRatingResponses(ratings))
	return &resp, nil
}
