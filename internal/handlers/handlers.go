package handlers

import (
	"context"
	"html"

	"github.com/gofiber/fiber/v3"

	"sendsong/internal/config"
	"sendsong/internal/models"
)

// SongStore is the narrow persistence surface the handlers need. It is
// satisfied by *db.DB and by fakes in tests.
type SongStore interface {
	InsertSentSong(ctx context.Context, song *models.SentSong) error
	ListRecentSentSongs(ctx context.Context, limit int) ([]models.SentSong, error)
	SearchSentSongsByRecipient(ctx context.Context, query string, limit int) ([]models.SentSong, error)
}

// TitleResolver resolves a display title for a video identifier, returning
// the empty string when none is available.
type TitleResolver interface {
	Title(ctx context.Context, videoID string) string
}

// MergeBranding adds the site branding values to a template data map.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}

// htmxError returns an error toast as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="toast toast-error">` + html.EscapeString(message) + `</div>`,
	)
}
