package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/homebar/backend/config"
	"github.com/pageza/homebar/backend/internal/api"
	"github.com/pageza/homebar/backend/internal/database"
	"github.com/pageza/homebar/backend/internal/middleware"
	"github.com/pageza/homebar/backend/internal/router"
	"github.com/pageza/homebar/backend/internal/server"
	"github.com/pageza/homebar/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService, err := service.NewAuthService(cfg.BarPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	handlers := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Inventory:      api.NewInventoryHandler(service.NewInventoryService(db)),
		Recipe:         api.NewRecipeHandler(service.NewRecipeService(db)),
		Recommendation: api.NewRecommendationHandler(service.NewRecommendationService(db)),
	}

	// Uploads need an S3 bucket; without one the endpoint is not registered.
	if cfg.S3Bucket != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		handlers.Upload = api.NewUploadHandler(service.NewUploadService(s3Cfg))
	} else {
		log.Println("S3_BUCKET_NAME not set; image uploads disabled")
	}

	// Redis is optional: without it the API simply runs unthrottled.
	var limiters router.Limiters
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			limiters.Recommendations = middleware.NewRecommendationRateLimiter(redisClient)
			limiters.Mutations = middleware.NewMutationRateLimiter(redisClient)
		}
	}

	r := router.SetupRouter(handlers, authService, limiters)
	srv := server.New(r, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
