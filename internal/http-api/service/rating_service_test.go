package service

import (
	"context"
	"testing"

	"toolhub/internal/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateToolUnknownTool(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.ratings.RateTool(context.Background(), 12345, dto.CreateRatingDTO{
		UserName: "a",
		Rating:   5,
	})
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRateToolReturnsCreatedRating(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	created, err := env.tools.Create(ctx, dto.CreateToolDTO{
		Name:        "Nmap",
		Description: "scanner",
		Category:    "Network",
	})
	require.NoError(t, err)

	rating, err := env.ratings.RateTool(ctx, created.ID, dto.CreateRatingDTO{
		UserName: "alice",
		Rating:   5,
		Comment:  strP("indispensable"),
	})
	require.NoError(t, err)

	assert.NotZero(t, rating.ID)
	assert.Equal(t, created.ID, rating.ToolID)
	assert.Equal(t, "alice", rating.UserName)
	assert.Equal(t, 5, rating.Rating)
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "indispensable", *rating.Comment)
	assert.False(t, rating.CreatedAt.IsZero())
}

func TestStatsEmptyStore(t *testing.T) {
	env := setupTestEnv(t)

	stats, err := env.stats.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalTools)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Equal(t, int64(0), stats.Categories)
	assert.Nil(t, stats.AverageRating)
}

func TestStatsTotalsAndGlobalAverage(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	nmap, err := env.tools.Create(ctx, dto.CreateToolDTO{
		Name: "Nmap", Description: "scanner", Category: "Network",
	})
	require.NoError(t, err)
	burp, err := env.tools.Create(ctx, dto.CreateToolDTO{
		Name: "Burp Suite", Description: "proxy", Category: "Web",
	})
	require.NoError(t, err)
	_, err = env.tools.Create(ctx, dto.CreateToolDTO{
		Name: "Wireshark", Description: "analyzer", Category: "Network",
	})
	require.NoError(t, err)

	_, err = env.ratings.RateTool(ctx, nmap.ID, dto.CreateRatingDTO{UserName: "a", Rating: 5})
	require.NoError(t, err)
	_, err = env.ratings.RateTool(ctx, burp.ID, dto.CreateRatingDTO{UserName: "a", Rating: 2})
	require.NoError(t, err)
	_, err = env.ratings.RateTool(ctx, burp.ID, dto.CreateRatingDTO{UserName: "b", Rating: 3})
	require.NoError(t, err)

	stats, err := env.stats.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalTools)
	assert.Equal(t, int64(3), stats.TotalRatings)
	assert.Equal(t, int64(2), stats.Categories)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 3.33, *stats.AverageRating, 1e-9)
}
