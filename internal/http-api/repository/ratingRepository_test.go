package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForToolOrderedByCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	now := time.Now()

	tool := createTestTool(t, db, "Nmap", "Network", nil)
	createTestRating(t, db, tool.ID, "second", 3, now)
	createTestRating(t, db, tool.ID, "first", 5, now.Add(-time.Hour))

	ratings, err := repo.ListForTool(ctx, tool.ID)
	require.NoError(t, err)

	require.Len(t, ratings, 2)
	assert.Equal(t, "first", ratings[0].UserName)
	assert.Equal(t, "second", ratings[1].UserName)
}

func TestAverageForTool(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	now := time.Now()

	tool := createTestTool(t, db, "Nmap", "Network", nil)
	other := createTestTool(t, db, "Wireshark", "Network", nil)

	avg, err := repo.AverageForTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Nil(t, avg, "no ratings should yield a nil average")

	createTestRating(t, db, tool.ID, "a", 5, now)
	createTestRating(t, db, tool.ID, "b", 3, now)
	// rating on another tool must not leak into the aggregate
	createTestRating(t, db, other.ID, "a", 1, now)

	avg, err = repo.AverageForTool(ctx, tool.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 4.0, *avg, 1e-9)

	count, err := repo.CountForTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGlobalAggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	now := time.Now()

	avg, err := repo.GlobalAverage(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg, "empty store should yield a nil global average")

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	a := createTestTool(t, db, "A", "c", nil)
	b := createTestTool(t, db, "B", "c", nil)
	createTestRating(t, db, a.ID, "u", 5, now)
	createTestRating(t, db, b.ID, "u", 2, now)

	avg, err = repo.GlobalAverage(ctx)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 3.5, *avg, 1e-9)

	count, err = repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
