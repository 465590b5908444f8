package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nijaru/yt-kb/models"
)

const maxKeyLength = 80

var (
	nonWordRE    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorsRE = regexp.MustCompile(`[\s_]+`)
	hyphensRE    = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a filesystem-safe key. Distinct titles can
// collapse to the same key; the later write wins.
func Slugify(text string) string {
	text = strings.TrimFunc(strings.ToLower(text), unicode.IsSpace)
	text = nonWordRE.ReplaceAllString(text, "")
	text = separatorsRE.ReplaceAllString(text, "-")
	text = hyphensRE.ReplaceAllString(text, "-")

	if runes := []rune(text); len(runes) > maxKeyLength {
		text = string(runes[:maxKeyLength])
	}
	return strings.TrimRight(text, "-")
}

// StorageKey derives the artifact key for an item. Titles made only of
// punctuation fall back to the video id.
func StorageKey(item models.WorkItem) string {
	if key := Slugify(item.Title); key != "" {
		return key
	}
	return Slugify(item.ID)
}
