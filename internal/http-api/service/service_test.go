package service

import (
	"testing"

	"toolhub/internal/http-api/models"
	"toolhub/internal/http-api/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db         *gorm.DB
	toolRepo   *repository.ToolRepo
	ratingRepo repository.RatingRepository
	tools      ToolService
	ratings    RatingService
	stats      StatsService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	toolRepo := repository.NewToolRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	return &testEnv{
		db:         db,
		toolRepo:   toolRepo,
		ratingRepo: ratingRepo,
		tools:      NewToolService(toolRepo, ratingRepo),
		ratings:    NewRatingService(ratingRepo, toolRepo),
		stats:      NewStatsService(toolRepo, ratingRepo),
	}
}

func strP(s string) *string {
	return &s
}
