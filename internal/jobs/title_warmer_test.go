package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"sendsong/internal/models"
)

type fakeLister struct {
	songs []models.SentSong
	err   error
}

func (f *fakeLister) ListRecentSentSongs(ctx context.Context, limit int) ([]models.SentSong, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.songs, nil
}

type countingResolver struct {
	ids []string
}

func (r *countingResolver) Title(ctx context.Context, videoID string) string {
	r.ids = append(r.ids, videoID)
	return "title"
}

func TestWarmResolvesValidVideoIDs(t *testing.T) {
	lister := &fakeLister{songs: []models.SentSong{
		{YouTubeURL: "https://youtu.be/dQw4w9WgXcQ"},
		{YouTubeURL: "not a video link"},
		{YouTubeURL: "https://www.youtube.com/watch?v=abc12345678"},
	}}
	resolver := &countingResolver{}
	w := NewTitleWarmer(lister, resolver, time.Minute, 20)

	w.warm(context.Background())

	want := []string{"dQw4w9WgXcQ", "abc12345678"}
	if len(resolver.ids) != len(want) {
		t.Fatalf("resolved %d ids %v, want %v", len(resolver.ids), resolver.ids, want)
	}
	for i, id := range want {
		if resolver.ids[i] != id {
			t.Errorf("resolved id[%d] = %q, want %q", i, resolver.ids[i], id)
		}
	}
}

func TestWarmListFailureIsAbsorbed(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection refused")}
	resolver := &countingResolver{}
	w := NewTitleWarmer(lister, resolver, time.Minute, 20)

	w.warm(context.Background())

	if len(resolver.ids) != 0 {
		t.Errorf("resolved %d ids after list failure, want 0", len(resolver.ids))
	}
}

func TestStartStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewTitleWarmer(&fakeLister{}, &countingResolver{}, time.Millisecond, 20)

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start() did not return after context cancellation")
	}
}
