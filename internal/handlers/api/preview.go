package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"sendsong/internal/preview"
	"sendsong/internal/youtube"
)

// TitleResolver resolves a display title for a video identifier.
type TitleResolver interface {
	Title(ctx context.Context, videoID string) string
}

// PreviewHandler resolves link previews via JSON API.
type PreviewHandler struct {
	resolver TitleResolver
}

// NewPreviewHandler creates a new API preview handler.
func NewPreviewHandler(resolver TitleResolver) *PreviewHandler {
	return &PreviewHandler{resolver: resolver}
}

// previewResponse describes a resolved link preview.
type previewResponse struct {
	VideoID      string `json:"video_id,omitempty"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	URL          string `json:"url"`
}

// Resolve extracts the video identifier from a URL and resolves its title.
// A URL that names no video yields an empty video_id and no title.
func (h *PreviewHandler) Resolve(c fiber.Ctx) error {
	rawURL := c.Query("url", "")
	if rawURL == "" {
		return jsonError(c, fiber.StatusBadRequest, "url query parameter is required")
	}

	resp := previewResponse{URL: rawURL}

	videoID := youtube.ExtractVideoID(rawURL)
	if videoID == "" {
		return jsonSuccess(c, resp)
	}

	resp.VideoID = videoID
	resp.ThumbnailURL = youtube.ThumbnailURL(videoID)

	resp.Title = h.resolver.Title(c.Context(), videoID)
	if resp.Title == "" {
		resp.Title = preview.FallbackTitle
	}

	return jsonSuccess(c, resp)
}
