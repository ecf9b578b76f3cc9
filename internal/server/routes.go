package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sendsong/internal/config"
	"sendsong/internal/db"
	"sendsong/internal/handlers"
	"sendsong/internal/handlers/api"
	"sendsong/internal/preview"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, resolver *preview.Resolver, site *config.SiteConfig) {
	// Initialize handlers
	songHandler := handlers.NewSongHandler(database, resolver, s.Cfg, site)
	probeHandler := handlers.NewProbeHandler(database)
	apiSongHandler := api.NewSongHandler(database, site)
	apiPreviewHandler := api.NewPreviewHandler(resolver)

	// Frontend routes
	s.App.Get("/", songHandler.Index)
	s.App.Get("/search", songHandler.Search)
	s.App.Get("/preview", songHandler.Preview)
	s.App.Post("/songs", songHandler.Create)

	// JSON API routes
	s.App.Get("/api/songs", apiSongHandler.List)
	s.App.Get("/api/songs/search", apiSongHandler.Search)
	s.App.Post("/api/songs", apiSongHandler.Create)
	s.App.Get("/api/preview", apiPreviewHandler.Resolve)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
