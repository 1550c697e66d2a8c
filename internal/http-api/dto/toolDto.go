package dto

import (
	"time"

	"toolhub/internal/http-api/models"
)

// CreateToolDTO used for POST /api/tools
type CreateToolDTO struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Language          *string `json:"language,omitempty"`
	GithubURL         *string `json:"github_url,omitempty"`
	WebsiteURL        *string `json:"website_url,omitempty"`
	Tags              *string `json:"tags,omitempty"`
	InstallationGuide *string `json:"installation_guide,omitempty"`
	UsageExample      *string `json:"usage_example,omitempty"`
	Author            *string `json:"author,omitempty"`
}

// UpdateToolDTO used for PUT /api/tools/:tool_id (partial updates allowed)
type UpdateToolDTO struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	Category          *string `json:"category,omitempty"`
	Language          *string `json:"language,omitempty"`
	GithubURL         *string `json:"github_url,omitempty"`
	WebsiteURL        *string `json:"website_url,omitempty"`
	Tags              *string `json:"tags,omitempty"`
	InstallationGuide *string `json:"installation_guide,omitempty"`
	UsageExample      *string `json:"usage_example,omitempty"`
	Author            *string `json:"author,omitempty"`
}

// ToolQuery carries the parsed list parameters from the handler.
type ToolQuery struct {
	Category string
	Language string
	Search   string
	SortBy   string
	Skip     int
	Limit    int
}

// ToolListResponse is the trimmed projection used in collection listings.
type ToolListResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Language      *string  `json:"language,omitempty"`
	Tags          *string  `json:"tags,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	RatingCount   int64    `json:"rating_count"`
	GithubURL     *string  `json:"github_url,omitempty"`
}

// ToolResponse is the full detail projection including ratings.
type ToolResponse struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	Language          *string          `json:"language,omitempty"`
	GithubURL         *string          `json:"github_url,omitempty"`
	WebsiteURL        *string          `json:"website_url,omitempty"`
	Tags              *string          `json:"tags,omitempty"`
	InstallationGuide *string          `json:"installation_guide,omitempty"`
	UsageExample      *string          `json:"usage_example,omitempty"`
	Author            *string          `json:"author,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	AverageRating     *float64         `json:"average_rating,omitempty"`
	RatingCount       int64            `json:"rating_count"`
	Ratings           []RatingResponse `json:"ratings"`
}

// Converters
func (d CreateToolDTO) ToModel() models.Tool {
	return models.Tool{
		Name:              d.Name,
		Description:       d.Description,
		Category:          d.Category,
		Language:          d.Language,
		GithubURL:         d.GithubURL,
		WebsiteURL:        d.WebsiteURL,
		Tags:              d.Tags,
		InstallationGuide: d.InstallationGuide,
		UsageExample:      d.UsageExample,
		Author:            d.Author,
	}
}

// ApplyTo overwrites only the fields present in the update payload.
func (d UpdateToolDTO) ApplyTo(t *models.Tool) {
	if d.Name != nil {
		t.Name = *d.Name
	}
	if d.Description != nil {
		t.Description = *d.Description
	}
	if d.Category != nil {
		t.Category = *d.Category
	}
	if d.Language != nil {
		t.Language = d.Language
	}
	if d.GithubURL != nil {
		t.GithubURL = d.GithubURL
	}
	if d.WebsiteURL != nil {
		t.WebsiteURL = d.WebsiteURL
	}
	if d.Tags != nil {
		t.Tags = d.Tags
	}
	if d.InstallationGuide != nil {
		t.InstallationGuide = d.InstallationGuide
	}
	if d.UsageExample != nil {
		t.UsageExample = d.UsageExample
	}
	if d.Author != nil {
		t.Author = d.Author
	}
}

func FromModelToListResponse(t models.Tool, avg *float64, count int64) ToolListResponse {
	return ToolListResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category,
		Language:      t.Language,
		Tags:          t.Tags,
		AverageRating: avg,
		RatingCount:   count,
		GithubURL:     t.GithubURL,
	}
}

func FromModelToResponse(t models.Tool, avg *float64, ratings []RatingResponse) ToolResponse {
	return ToolResponse{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		Category:          t.Category,
		Language:          t.Language,
		GithubURL:         t.GithubURL,
		WebsiteURL:        t.WebsiteURL,
		Tags:              t.Tags,
		InstallationGuide: t.InstallationGuide,
		UsageExample:      t.UsageExample,
		Author:            t.Author,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		AverageRating:     avg,
		RatingCount:       int64(len(ratings)),
		Ratings:           ratings,
	}
}
