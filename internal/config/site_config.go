package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig tunes feed and cache behavior. Loaded from an optional YAML
// file; every field has a default so the file can be omitted entirely.
type SiteConfig struct {
	FeedPageSize      int           // records on the initial feed
	SearchResultLimit int           // cap on search results
	TitleCacheTTL     time.Duration // how long resolved titles live
	WarmerInterval    time.Duration // title warmer cadence
	WarmerBatch       int           // songs warmed per run
}

// siteConfigFile is the YAML shape of the config file. Durations are
// strings in Go duration syntax ("24h", "10m").
type siteConfigFile struct {
	FeedPageSize      int    `yaml:"feed_page_size"`
	SearchResultLimit int    `yaml:"search_result_limit"`
	TitleCacheTTL     string `yaml:"title_cache_ttl"`
	WarmerInterval    string `yaml:"warmer_interval"`
	WarmerBatch       int    `yaml:"warmer_batch"`
}

// DefaultSiteConfig returns the built-in tuning values.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		FeedPageSize:      10,
		SearchResultLimit: 50,
		TitleCacheTTL:     24 * time.Hour,
		WarmerInterval:    10 * time.Minute,
		WarmerBatch:       20,
	}
}

// LoadSiteConfig loads the YAML site configuration file. Path is determined
// by CONFIG_FILE, defaulting to "config.yaml". A missing file yields the
// defaults without error.
func LoadSiteConfig() (*SiteConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	cfg := DefaultSiteConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var file siteConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if file.FeedPageSize > 0 {
		cfg.FeedPageSize = file.FeedPageSize
	}
	if file.SearchResultLimit > 0 {
		cfg.SearchResultLimit = file.SearchResultLimit
	}
	if file.WarmerBatch > 0 {
		cfg.WarmerBatch = file.WarmerBatch
	}
	if file.TitleCacheTTL != "" {
		d, err := time.ParseDuration(file.TitleCacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid title_cache_ttl: %w", err)
		}
		cfg.TitleCacheTTL = d
	}
	if file.WarmerInterval != "" {
		d, err := time.ParseDuration(file.WarmerInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid warmer_interval: %w", err)
		}
		cfg.WarmerInterval = d
	}

	return cfg, nil
}
