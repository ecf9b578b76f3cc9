package validation

import (
	"strings"
	"testing"
)

func TestNewSubmissionTrims(t *testing.T) {
	s := NewSubmission("  Alex  ", " https://youtu.be/abc12345678 ", "  hi  ")
	if s.RecipientName != "Alex" {
		t.Errorf("RecipientName = %q, want %q", s.RecipientName, "Alex")
	}
	if s.YouTubeURL != "https://youtu.be/abc12345678" {
		t.Errorf("YouTubeURL = %q, want trimmed URL", s.YouTubeURL)
	}
	if s.Message != "hi" {
		t.Errorf("Message = %q, want %q", s.Message, "hi")
	}
}

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		url       string
		message   string
		wantOK    bool
	}{
		{"valid", "Alex", "https://youtu.be/abc12345678", "", true},
		{"valid with message", "Alex", "https://youtu.be/abc12345678", "for you", true},
		{"non-youtube url accepted", "Alex", "https://example.com/song", "", true},
		{"empty recipient", "", "https://youtu.be/abc12345678", "", false},
		{"whitespace recipient", "   ", "https://youtu.be/abc12345678", "", false},
		{"empty url", "Alex", "", "", false},
		{"whitespace url", "Alex", "   ", "", false},
		{"both empty", "", "", "", false},
		{"recipient too long", strings.Repeat("a", MaxRecipientLen+1), "https://youtu.be/abc12345678", "", false},
		{"url too long", "Alex", "https://" + strings.Repeat("a", MaxURLLen), "", false},
		{"message too long", "Alex", "https://youtu.be/abc12345678", strings.Repeat("a", MaxMessageLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSubmission(tt.recipient, tt.url, tt.message)
			problem := s.Validate()
			if ok := problem == ""; ok != tt.wantOK {
				t.Errorf("Validate() = %q, want ok=%v", problem, tt.wantOK)
			}
		})
	}
}
