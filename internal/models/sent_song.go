package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SentSong represents one anonymously shared song. Records are append-only:
// the application never updates or deletes them.
type SentSong struct {
	ID            uuid.UUID `json:"id"`
	RecipientName string    `json:"recipient_name"`
	YouTubeURL    string    `json:"youtube_url"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sent_at"`
}

// SentAtDisplay returns the relative-time label shown on song cards.
func (s *SentSong) SentAtDisplay() string {
	return RelativeTime(s.SentAt, time.Now())
}

// RelativeTime renders a timestamp the way the feed displays it: a calendar
// date once a full day has passed, otherwise a coarse "N hours/minutes ago",
// and "a few seconds ago" under a minute.
func RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case days >= 1:
		return ts.Format("1/2/2006")
	case hours >= 1:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case minutes >= 1:
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "a few seconds ago"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
