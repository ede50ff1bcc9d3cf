package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"abi-fashion-backend/internal/ai"
	"abi-fashion-backend/internal/config"
	"abi-fashion-backend/internal/logger"
	"abi-fashion-backend/internal/storage"
	"abi-fashion-backend/internal/telemetry"
	"abi-fashion-backend/middleware"
	"abi-fashion-backend/routes"
	"abi-fashion-backend/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	// Connect to MongoDB
	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()
	db := mongoClient.Database(cfg.DBName)

	// Redis caches resolved image URLs; the site works without it.
	var cache *redis.Client
	if rdb, err := config.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, image URL caching disabled", "error", err)
	} else {
		cache = rdb
		defer cache.Close()
	}

	// Object storage for gallery images. Without credentials the upload
	// endpoints are not registered and blob references fall through raw.
	var objectStore storage.ObjectStore
	if cfg.MinioAccessKey != "" {
		store, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatal("Failed to connect to object storage:", err)
		}
		objectStore = store
	} else {
		logger.Warn("MINIO_ACCESS_KEY not set, image uploads disabled")
	}

	// Tracing
	if cfg.TracingEnabled {
		shutdown, err := telemetry.InitTracer("abi-fashion-backend", cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("Tracing disabled", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Services
	presignExpiry := time.Duration(cfg.PresignExpiryMin) * time.Minute
	resolver := services.NewImageResolver(objectStore, cache, presignExpiry)
	catalog := services.NewCatalogService(db, resolver)
	transcripts := services.NewTranscriptService(db)
	completions := ai.NewCompletionClient(cfg.OpenAIAPIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	assistant := services.NewAssistantService(transcripts, completions)
	access := services.NewAccessService(db, cfg.AdminPasswordHash)
	seeder := services.NewSeedService(db)

	// Daily transcript retention sweep
	retention := services.NewRetentionService(transcripts, cfg.ChatRetentionDays)
	if err := retention.Start(); err != nil {
		log.Fatal("Failed to start retention sweep:", err)
	}
	defer retention.Stop()

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestIDMiddleware())
	if cfg.TracingEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	public := router.Group("/api")
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(cfg.AdminTokenSecret))

	// Frontend config: the WhatsApp number is only ever a deep link.
	public.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"whatsapp_number": cfg.WhatsAppNumber})
	})

	routes.SetupAuthRoutes(public, admin, cfg, access)
	routes.SetupCatalogRoutes(public, admin, catalog)
	routes.SetupChatRoutes(public, admin, assistant, transcripts)
	routes.SetupSeedRoutes(admin, seeder)
	if objectStore != nil {
		routes.SetupFileRoutes(admin, objectStore, presignExpiry)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
