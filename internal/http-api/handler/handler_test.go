package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"toolhub/internal/http-api/models"
	"toolhub/internal/http-api/repository"
	"toolhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
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

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	toolRepo := repository.NewToolRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	toolSvc := service.NewToolService(toolRepo, ratingRepo)
	ratingSvc := service.NewRatingService(ratingRepo, toolRepo)
	statsSvc := service.NewStatsService(toolRepo, ratingRepo)

	api := r.Group("/api")
	tools := api.Group("/tools")
	NewToolHandler(toolSvc).RegisterRoutes(tools)
	NewRatingHandler(ratingSvc).RegisterRoutes(tools)
	NewStatsHandler(toolSvc, statsSvc).RegisterRoutes(api)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
