package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sendsong/internal/config"
	"sendsong/internal/metrics"
	"sendsong/internal/models"
	"sendsong/internal/validation"
)

// SongStore is the persistence surface the JSON API needs.
type SongStore interface {
	InsertSentSong(ctx context.Context, song *models.SentSong) error
	ListRecentSentSongs(ctx context.Context, limit int) ([]models.SentSong, error)
	SearchSentSongsByRecipient(ctx context.Context, query string, limit int) ([]models.SentSong, error)
}

// SongHandler handles sent-song operations via JSON API.
type SongHandler struct {
	store SongStore
	site  *config.SiteConfig
}

// NewSongHandler creates a new API song handler.
func NewSongHandler(store SongStore, site *config.SiteConfig) *SongHandler {
	return &SongHandler{store: store, site: site}
}

// List returns the most recent sent songs, newest first.
func (h *SongHandler) List(c fiber.Ctx) error {
	songs, err := h.store.ListRecentSentSongs(c.Context(), h.site.FeedPageSize)
	if err != nil {
		slog.Error("api: failed to list songs", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch songs")
	}
	if songs == nil {
		songs = []models.SentSong{}
	}
	return jsonSuccess(c, songs)
}

// Search returns songs whose recipient name contains the query,
// case-insensitively. An empty query returns the recent feed unfiltered.
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
		slog.Error("api: failed to search songs", "query", query, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch songs")
	}
	if songs == nil {
		songs = []models.SentSong{}
	}
	return jsonSuccess(c, songs)
}

// createSongRequest is the JSON body for Create.
type createSongRequest struct {
	RecipientName string `json:"recipient_name"`
	YouTubeURL    string `json:"youtube_url"`
	Message       string `json:"message"`
}

// Create persists a new share and returns the stored record, including its
// server-assigned id and timestamp.
func (h *SongHandler) Create(c fiber.Ctx) error {
	var req createSongRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sub := validation.NewSubmission(req.RecipientName, req.YouTubeURL, req.Message)
	if problem := sub.Validate(); problem != "" {
		return jsonError(c, fiber.StatusBadRequest, problem)
	}

	song := &models.SentSong{
		RecipientName: sub.RecipientName,
		YouTubeURL:    sub.YouTubeURL,
		Message:       sub.Message,
	}
	if err := h.store.InsertSentSong(c.Context(), song); err != nil {
		slog.Error("api: failed to insert sent song", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to send song")
	}

	metrics.RecordShare()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   song,
	})
}
