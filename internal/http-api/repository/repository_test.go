package repository

import (
	"testing"
	"time"

	"toolhub/internal/http-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestTool(t *testing.T, db *gorm.DB, name, category string, language *string) models.Tool {
	t.Helper()
	tool := models.Tool{
		Name:        name,
		Description: name + " description",
		Category:    category,
		Language:    language,
	}
	if err := db.Create(&tool).Error; err != nil {
		t.Fatalf("Failed to create test tool: %v", err)
	}
	return tool
}

func createTestRating(t *testing.T, db *gorm.DB, toolID int64, user string, value int, createdAt time.Time) models.Rating {
	t.Helper()
	rating := models.Rating{
		ToolID:    toolID,
		UserName:  user,
		Rating:    value,
		CreatedAt: createdAt,
	}
	if err := db.Create(&rating).Error; err != nil {
		t.Fatalf("Failed to create test rating: %v", err)
	}
	return rating
}

func strp(s string) *string {
	return &s
}
