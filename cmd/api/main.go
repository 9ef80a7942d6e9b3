package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/database"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/server"
	"github.com/pantrychef/backend/internal/service"
)

func main() {
	// .env is optional; real deployments provide the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Redis error: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("S3 error: %v", err)
	}

	llmClient := service.NewLLMClient(cfg)
	searchClient := service.NewSpoonacularClient(cfg)
	imageService := service.NewImageService(cfg, s3Config)

	suggestionService := service.NewSuggestionService(
		[]service.RecipeProvider{
			llmClient,
			searchClient,
			service.NewStaticProvider(),
		},
		service.NewRedisRecipeCache(redisClient, cfg.CacheTTL),
		service.NewThrottle(cfg.ThrottleDelay),
		imageService,
	)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	ingredientService := service.NewIngredientService(db, llmClient)
	savedRecipeService := service.NewSavedRecipeService(db)

	engine := router.Setup(
		api.NewAuthHandler(authService),
		api.NewIngredientHandler(ingredientService, authService),
		api.NewRecipeHandler(suggestionService, searchClient, authService),
		api.NewSavedRecipeHandler(savedRecipeService, authService),
	)

	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
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
