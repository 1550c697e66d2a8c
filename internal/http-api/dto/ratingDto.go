package dto

import (
	"time"

	"toolhub/internal/http-api/models"
)

// CreateRatingDTO for submitting a rating
type CreateRatingDTO struct {
	UserName string  `json:"user_name" binding:"required"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment,omitempty"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID        int64     `json:"id"`
	ToolID    int64     `json:"tool_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(r *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		ToolID:    r.ToolID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
