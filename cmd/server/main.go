package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/storage/memory/v2"
	"github.com/gofiber/storage/redis/v3"
	"github.com/joho/godotenv"

	"sendsong/internal/config"
	"sendsong/internal/db"
	"sendsong/internal/jobs"
	"sendsong/internal/metrics"
	"sendsong/internal/preview"
	"sendsong/internal/server"
	"sendsong/internal/youtube"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	site, err := config.LoadSiteConfig()
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register metrics collectors
	metrics.Init(database)

	// Title cache: Redis when configured, in-process otherwise
	var titleStore preview.Store
	if cfg.RedisURL != "" {
		titleStore = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Println("Title cache backed by Redis")
	} else {
		titleStore = memory.New()
	}

	ytClient := youtube.NewClient(cfg.YouTubeAPIKey, nil)
	if !ytClient.Enabled() {
		log.Println("YOUTUBE_API_KEY not set: title resolution disabled, previews use the fallback label")
	}
	resolver := preview.NewResolver(ytClient, titleStore, site.TitleCacheTTL)

	// Background title warmer
	if ytClient.Enabled() {
		warmer := jobs.NewTitleWarmer(database, resolver, site.WarmerInterval, site.WarmerBatch)
		go warmer.Start(ctx)
	}

	// Initialize server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database, resolver, site)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
