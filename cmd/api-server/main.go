package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"toolhub/database"
	"toolhub/internal/config"
	"toolhub/internal/http-api/handler"
	"toolhub/internal/http-api/middleware"
	"toolhub/internal/http-api/repository"
	"toolhub/internal/http-api/service"
	"toolhub/internal/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.SeedSampleData {
		if err := database.Seed(db, zlog); err != nil {
			zlog.Fatal("seeding sample data failed", zap.Error(err))
		}
	}

	if cfg.GoEnv == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := setupRouter(db, cfg, zlog)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}

func setupRouter(db *gorm.DB, cfg *config.Config, zlog *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	toolRepo := repository.NewToolRepo(db)
	ratingRepo := repository.NewRatingRepository(db)

	toolSvc := service.NewToolService(toolRepo, ratingRepo)
	ratingSvc := service.NewRatingService(ratingRepo, toolRepo)
	statsSvc := service.NewStatsService(toolRepo, ratingRepo)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Security Tool Discovery API",
			"version": version,
			"docs":    "/docs",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		tools := api.Group("/tools")
		handler.NewToolHandler(toolSvc).RegisterRoutes(tools)
		handler.NewRatingHandler(ratingSvc).RegisterRoutes(tools)

		handler.NewStatsHandler(toolSvc, statsSvc).RegisterRoutes(api)
	}

	return r
}
