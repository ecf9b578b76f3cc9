// Package preview resolves human-readable titles for shared songs, memoizing
// results in a process-wide cache shared by every rendered card.
package preview

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"sendsong/internal/metrics"
)

// FallbackTitle is displayed when no title can be resolved for a video.
const FallbackTitle = "YouTube Video"

// TitleFetcher fetches a video title from the metadata service.
type TitleFetcher interface {
	Enabled() bool
	VideoTitle(ctx context.Context, videoID string) (string, error)
}

// Store is the narrow cache surface the resolver needs. It is satisfied by
// the gofiber storage drivers (memory, redis).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Resolver memoizes titles keyed by video identifier. Concurrent requests
// for the same identifier collapse into a single upstream call.
type Resolver struct {
	fetcher TitleFetcher
	store   Store
	ttl     time.Duration
	group   singleflight.Group
}

// NewResolver creates a resolver backed by the given fetcher and cache.
func NewResolver(fetcher TitleFetcher, store Store, ttl time.Duration) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
	}
}

// Title returns the resolved title for a video identifier, or the empty
// string when resolution is unavailable. Failures are logged and absorbed:
// callers render the fallback label instead.
func (r *Resolver) Title(ctx context.Context, videoID string) string {
	if videoID == "" {
		return ""
	}

	if !r.fetcher.Enabled() {
		metrics.RecordTitleResolution(metrics.OutcomeDisabled)
		return ""
	}

	if cached, err := r.store.Get(videoID); err == nil && len(cached) > 0 {
		metrics.RecordTitleResolution(metrics.OutcomeCached)
		return string(cached)
	}

	title, err, _ := r.group.Do(videoID, func() (any, error) {
		fetched, err := r.fetcher.VideoTitle(ctx, videoID)
		if err != nil {
			return "", err
		}
		if fetched != "" {
			if err := r.store.Set(videoID, []byte(fetched), r.ttl); err != nil {
				slog.Warn("failed to cache video title", "video_id", videoID, "error", err)
			}
		}
		return fetched, nil
	})
	if err != nil {
		slog.Error("title resolution failed", "video_id", videoID, "error", err)
		metrics.RecordTitleResolution(metrics.OutcomeError)
		return ""
	}

	resolved := title.(string)
	if resolved == "" {
		metrics.RecordTitleResolution(metrics.OutcomeMiss)
	} else {
		metrics.RecordTitleResolution(metrics.OutcomeResolved)
	}
	return resolved
}
