package main

import (
	"log"
	"time"

	"portfolio-admin/config"
	"portfolio-admin/database"
	authapi "portfolio-admin/internal/api/auth"
	routes "portfolio-admin/internal/app/http"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/logger"
	"portfolio-admin/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg := config.Load()

	sync := logger.Init(gin.Mode() != gin.ReleaseMode)
	defer sync()

	if err := database.Init(cfg.DBURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Log.Info("connected and migrated")

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}
	storage.Uploads = store

	authapi.Configure(cfg.JWTSecret)
	if err := authapi.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// uploaded files are served straight from disk
	r.Static("/"+storage.PublicPrefix, store.BaseDir())

	routes.RegisterRoutes(r, cfg.JWTSecret)

	logger.Log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
