package preview

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFetcher struct {
	enabled bool
	title   string
	err     error
	calls   int
}

func (f *fakeFetcher) Enabled() bool { return f.enabled }

func (f *fakeFetcher) VideoTitle(ctx context.Context, videoID string) (string, error) {
	f.calls++
	return f.title, f.err
}

type mapStore map[string][]byte

func (m mapStore) Get(key string) ([]byte, error) { return m[key], nil }

func (m mapStore) Set(key string, val []byte, exp time.Duration) error {
	m[key] = val
	return nil
}

func TestTitleResolvedAndCached(t *testing.T) {
	fetcher := &fakeFetcher{enabled: true, title: "Never Gonna Give You Up"}
	r := NewResolver(fetcher, mapStore{}, time.Hour)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if got := r.Title(ctx, "dQw4w9WgXcQ"); got != "Never Gonna Give You Up" {
			t.Fatalf("Title() call %d = %q, want %q", i, got, "Never Gonna Give You Up")
		}
	}

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (cache shared across lookups)", fetcher.calls)
	}
}

func TestTitleDisabledFetcher(t *testing.T) {
	fetcher := &fakeFetcher{enabled: false}
	r := NewResolver(fetcher, mapStore{}, time.Hour)

	if got := r.Title(context.Background(), "dQw4w9WgXcQ"); got != "" {
		t.Errorf("Title() = %q, want empty string", got)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times with lookups disabled, want 0", fetcher.calls)
	}
}

func TestTitleFetchErrorFallsBack(t *testing.T) {
	fetcher := &fakeFetcher{enabled: true, err: errors.New("boom")}
	r := NewResolver(fetcher, mapStore{}, time.Hour)

	if got := r.Title(context.Background(), "dQw4w9WgXcQ"); got != "" {
		t.Errorf("Title() = %q, want empty string on fetch error", got)
	}
}

func TestTitleEmptyResultNotCached(t *testing.T) {
	fetcher := &fakeFetcher{enabled: true, title: ""}
	store := mapStore{}
	r := NewResolver(fetcher, store, time.Hour)

	if got := r.Title(context.Background(), "dQw4w9WgXcQ"); got != "" {
		t.Errorf("Title() = %q, want empty string", got)
	}
	if _, ok := store["dQw4w9WgXcQ"]; ok {
		t.Error("empty title was cached")
	}
}

func TestTitleEmptyVideoID(t *testing.T) {
	fetcher := &fakeFetcher{enabled: true, title: "x"}
	r := NewResolver(fetcher, mapStore{}, time.Hour)

	if got := r.Title(context.Background(), ""); got != "" {
		t.Errorf("Title(\"\") = %q, want empty string", got)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times for empty id, want 0", fetcher.calls)
	}
}
