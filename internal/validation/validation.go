package validation

import "strings"

// Field length caps. The URL cap matches common browser limits; recipient
// and message caps keep the feed cards renderable.
const (
	MaxRecipientLen = 100
	MaxURLLen       = 2048
	MaxMessageLen   = 500
)

// Submission holds the trimmed share-form fields.
type Submission struct {
	RecipientName string
	YouTubeURL    string
	Message       string
}

// NewSubmission trims the raw form values. The URL is deliberately not
// checked against YouTube URL shapes here: any non-empty link is accepted
// and the preview falls back to plain text when no video ID is found.
func NewSubmission(recipientName, youtubeURL, message string) Submission {
	return Submission{
		RecipientName: strings.TrimSpace(recipientName),
		YouTubeURL:    strings.TrimSpace(youtubeURL),
		Message:       strings.TrimSpace(message),
	}
}

// Validate returns a human-readable problem with the submission, or "" when
// it is acceptable.
func (s Submission) Validate() string {
	if s.YouTubeURL == "" || s.RecipientName == "" {
		return "Please enter a YouTube URL and a recipient name"
	}
	if len(s.RecipientName) > MaxRecipientLen {
		return "Recipient name is too long"
	}
	if len(s.YouTubeURL) > MaxURLLen {
		return "URL is too long"
	}
	if len(s.Message) > MaxMessageLen {
		return "Message is too long"
	}
	return ""
}
