package config

import (
	"os"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Video metadata API. Empty disables title resolution (previews fall
	// back to a generic label).
	YouTubeAPIKey string

	// Title cache backend. Empty uses the in-process store.
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Send the Song"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/sendsong?sslmode=disable"),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Send the Song"),
		SiteTagline: getEnv("SITE_TAGLINE", "Share songs anonymously"),
		SiteFooter:  getEnv("SITE_FOOTER", "Send the Song - share the music you love"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
