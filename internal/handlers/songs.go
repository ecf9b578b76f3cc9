package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sendsong/internal/config"
	"sendsong/internal/metrics"
	"sendsong/internal/models"
	"sendsong/internal/preview"
	"sendsong/internal/validation"
	"sendsong/internal/youtube"
)

// SongHandler serves the feed pages and share flow.
type SongHandler struct {
	store    SongStore
	resolver TitleResolver
	cfg      *config.Config
	site     *config.SiteConfig
}

// NewSongHandler creates a new song handler.
func NewSongHandler(store SongStore, resolver TitleResolver, cfg *config.Config, site *config.SiteConfig) *SongHandler {
	return &SongHandler{store: store, resolver: resolver, cfg: cfg, site: site}
}

// Index renders the landing page: hero with the most recent song, the feed
// grid, and the share dialog.
func (h *SongHandler) Index(c fiber.Ctx) error {
	data := MergeBranding(fiber.Map{}, h.cfg)

	songs, err := h.store.ListRecentSentSongs(c.Context(), h.site.FeedPageSize)
	if err != nil {
		slog.Error("failed to load recent songs", "error", err)
		data["LoadError"] = "Error fetching songs"
		data["Songs"] = []models.SentSong{}
		return c.Render("index", data)
	}

	data["Songs"] = songs
	if len(songs) > 0 {
		data["MostRecent"] = &songs[0]
	}
	return c.Render("index", data)
}

// Search renders the feed grid partial. An empty query mirrors the
// unfiltered feed; a non-empty query filters by recipient name. The 500ms
// debounce lives client-side in the search box's hx-trigger delay.
func (h *SongHandler) Search(c fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q", ""))

	var (
		songs []models.SentSong
		err   error
	)
	if query == "" {
		songs, err = h.store.ListRecentSentSongs(c.Context(), h.site.FeedPageSize)
	} else {
		songs, err = h.store.SearchSentSongsByRecipient(c.Context(), query, h.site.SearchResultLimit)
	}
	if err != nil {
		slog.Error("failed to search songs", "query", query, "error", err)
		return c.Render("partials/songs_grid", fiber.Map{
			"Songs":     []models.SentSong{},
			"Query":     query,
			"LoadError": "Error fetching songs",
		}, "")
	}

	return c.Render("partials/songs_grid", fiber.Map{
		"Songs": songs,
		"Query": query,
	}, "")
}

// Create persists a new share. On success it returns a confirmation partial
// whose out-of-band swap prepends the stored card (with its server-assigned
// id and timestamp) to the feed grid.
func (h *SongHandler) Create(c fiber.Ctx) error {
	sub := validation.NewSubmission(
		c.FormValue("recipient_name"),
		c.FormValue("youtube_url"),
		c.FormValue("message"),
	)
	if problem := sub.Validate(); problem != "" {
		return htmxError(c, problem)
	}

	song := &models.SentSong{
		RecipientName: sub.RecipientName,
		YouTubeURL:    sub.YouTubeURL,
		Message:       sub.Message,
	}
	if err := h.store.InsertSentSong(c.Context(), song); err != nil {
		slog.Error("failed to insert sent song", "error", err)
		return htmxError(c, "There was a problem sending your song. Try again.")
	}

	metrics.RecordShare()

	return c.Render("partials/share_success", fiber.Map{
		"Song": song,
	}, "")
}

// Preview renders the link-preview partial for one song card: thumbnail and
// resolved title for a valid video URL, or the raw URL as a plain link.
func (h *SongHandler) Preview(c fiber.Ctx) error {
	rawURL := c.Query("url", "")

	videoID := youtube.ExtractVideoID(rawURL)
	if videoID == "" {
		return c.Render("partials/preview_plain", fiber.Map{
			"URL": rawURL,
		}, "")
	}

	title := h.resolver.Title(c.Context(), videoID)
	if title == "" {
		title = preview.FallbackTitle
	}

	return c.Render("partials/preview", fiber.Map{
		"URL":          rawURL,
		"Title":        title,
		"ThumbnailURL": youtube.ThumbnailURL(videoID),
	}, "")
}
