package service

import (
	"math"

	"toolhub/internal/http-api/dto"
	"toolhub/internal/http-api/models"
)

// roundTo2 matches the wire contract: averages carry two decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundedAverage(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	r := roundTo2(*avg)
	return &r
}

// averageOf computes the mean of the given ratings, nil when there are none.
func averageOf(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := roundTo2(float64(sum) / float64(len(ratings)))
	return &avg
}

func toRatingResponses(ratings []models.Rating) []dto.RatingResponse {
	out := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return out
}
