package jobs

import (
	"context"
	"log"
	"time"

	"sendsong/internal/models"
	"sendsong/internal/youtube"
)

// SongLister lists the most recent sent songs.
type SongLister interface {
	ListRecentSentSongs(ctx context.Context, limit int) ([]models.SentSong, error)
}

// TitleResolver resolves and caches a title for a video identifier.
type TitleResolver interface {
	Title(ctx context.Context, videoID string) string
}

// TitleWarmer pre-resolves titles for the most recent songs so feed renders
// usually hit the shared cache instead of the metadata API.
type TitleWarmer struct {
	store    SongLister
	resolver TitleResolver
	interval time.Duration
	batch    int
}

// NewTitleWarmer creates a new title warmer.
func NewTitleWarmer(store SongLister, resolver TitleResolver, interval time.Duration, batch int) *TitleWarmer {
	return &TitleWarmer{
		store:    store,
		resolver: resolver,
		interval: interval,
		batch:    batch,
	}
}

// Start begins the background warming loop.
func (w *TitleWarmer) Start(ctx context.Context) {
	log.Printf("Title warmer started (interval: %v, batch: %d)", w.interval, w.batch)

	// Run immediately on start
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Title warmer stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

// warm resolves titles for the most recent batch of songs. Resolution
// failures are absorbed by the resolver; the warmer only walks the list.
func (w *TitleWarmer) warm(ctx context.Context) {
	songs, err := w.store.ListRecentSentSongs(ctx, w.batch)
	if err != nil {
		log.Printf("Title warmer: failed to list songs: %v", err)
		return
	}

	for _, song := range songs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		videoID := youtube.ExtractVideoID(song.YouTubeURL)
		if videoID == "" {
			continue
		}
		w.resolver.Title(ctx, videoID)
	}
}
