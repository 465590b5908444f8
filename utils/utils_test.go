package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nijaru/yt-kb/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Test Video", "test-video"},
		{"The Four Horsemen: Criticism!!", "the-four-horsemen-criticism"},
		{"the four horsemen criticism", "the-four-horsemen-criticism"},
		{"Making Relationships Work | Part 1 | Dr. John Gottman", "making-relationships-work-part-1-dr-john-gottman"},
		{"  snake_case   and -- dashes  ", "snake-case-and-dashes"},
		{"Dr. John Gottman: The Man's Guide to Women", "dr-john-gottman-the-mans-guide-to-women"},
		{"Brené Brown on Empathy", "brené-brown-on-empathy"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSlugifyTruncates(t *testing.T) {
	title := strings.Repeat("word ", 30)
	got := Slugify(title)

	if n := utf8.RuneCountInString(got); n > maxKeyLength {
		t.Errorf("expected at most %d characters, got %d", maxKeyLength, n)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("expected no trailing hyphen, got %q", got)
	}
}

func TestSlugifyTruncatesOnHyphen(t *testing.T) {
	// 79 characters followed by a separator land the cut on a hyphen.
	title := strings.Repeat("a", 79) + " tail"
	got := Slugify(title)

	if got != strings.Repeat("a", 79) {
		t.Errorf("expected trailing hyphen stripped, got %q", got)
	}
}

func TestStorageKeyFallsBackToID(t *testing.T) {
	item := models.WorkItem{ID: "abc_123-XY", Title: "???"}
	if got := StorageKey(item); got != "abc-123-xy" {
		t.Errorf("expected id fallback, got %q", got)
	}

	item.Title = "Real Title"
	if got := StorageKey(item); got != "real-title" {
		t.Errorf("expected title key, got %q", got)
	}
}
