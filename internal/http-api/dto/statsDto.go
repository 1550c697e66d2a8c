package dto

// StatsResponse for GET /api/stats
type StatsResponse struct {
	TotalTools    int64    `json:"total_tools"`
	TotalRatings  int64    `json:"total_ratings"`
	Categories    int64    `json:"categories"`
	AverageRating *float64 `json:"average_rating"`
}
