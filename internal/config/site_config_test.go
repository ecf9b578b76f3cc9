package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSiteConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadSiteConfig()
	if err != nil {
		t.Fatalf("LoadSiteConfig() error = %v", err)
	}
	if cfg.FeedPageSize != 10 {
		t.Errorf("FeedPageSize = %d, want default 10", cfg.FeedPageSize)
	}
	if cfg.SearchResultLimit != 50 {
		t.Errorf("SearchResultLimit = %d, want default 50", cfg.SearchResultLimit)
	}
	if cfg.TitleCacheTTL != 24*time.Hour {
		t.Errorf("TitleCacheTTL = %v, want default 24h", cfg.TitleCacheTTL)
	}
}

func TestLoadSiteConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "feed_page_size: 5\ntitle_cache_ttl: 1h\nwarmer_interval: 2m\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadSiteConfig()
	if err != nil {
		t.Fatalf("LoadSiteConfig() error = %v", err)
	}
	if cfg.FeedPageSize != 5 {
		t.Errorf("FeedPageSize = %d, want 5", cfg.FeedPageSize)
	}
	if cfg.TitleCacheTTL != time.Hour {
		t.Errorf("TitleCacheTTL = %v, want 1h", cfg.TitleCacheTTL)
	}
	if cfg.WarmerInterval != 2*time.Minute {
		t.Errorf("WarmerInterval = %v, want 2m", cfg.WarmerInterval)
	}
	// Untouched fields keep their defaults
	if cfg.SearchResultLimit != 50 {
		t.Errorf("SearchResultLimit = %d, want default 50", cfg.SearchResultLimit)
	}
}

func TestLoadSiteConfigBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("title_cache_ttl: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadSiteConfig(); err == nil {
		t.Error("LoadSiteConfig() error = nil, want parse error")
	}
}
