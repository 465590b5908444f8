package models

import (
	"fmt"
	"strings"
)

const (
	// UnavailablePrefix marks a stored transcript as a failed fetch. Its
	// presence in the body is the only failure signal on disk.
	UnavailablePrefix = "[Transcript unavailable"

	transcriptHeading = "## Transcript"
	urlField          = "- **URL:** "
	channelField      = "- **Channel:** "
	lengthField       = "- **Approximate Length:** "
	videoIDField      = "- **Video ID:** "
)

func FailureMarker(reason string) string {
	return fmt.Sprintf("%s: %s]", UnavailablePrefix, reason)
}

// Artifact is the markdown document persisted for one video.
type Artifact struct {
	Title   string
	URL     string
	Channel string
	// Exactly one of Length or VideoID is written to the header; Length wins
	// when both are set.
	Length  string
	VideoID string
	Body    string
}

func NewArtifact(item WorkItem, body string) *Artifact {
	a := &Artifact{
		Title:   item.Title,
		URL:     WatchURL(item.ID),
		Channel: item.Channel,
		Body:    body,
	}
	if item.Length != "" {
		a.Length = item.Length
	} else {
		a.VideoID = item.ID
	}
	return a
}

func (a *Artifact) Successful() bool {
	return !strings.Contains(a.Body, UnavailablePrefix)
}

func (a *Artifact) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	b.WriteString(urlField + a.URL + "\n")
	b.WriteString(channelField + a.Channel + "\n")
	if a.Length != "" {
		b.WriteString(lengthField + a.Length + "\n")
	} else {
		b.WriteString(videoIDField + a.VideoID + "\n")
	}
	b.WriteString("\n" + transcriptHeading + "\n\n")
	b.WriteString(a.Body)
	b.WriteString("\n")
	return b.String()
}

// ParseArtifact reads a document written by Render. Both header variants are
// accepted. A document with no transcript heading is treated as all body so
// the failure check still sees every byte.
func ParseArtifact(doc string) *Artifact {
	a := &Artifact{}

	head, body, found := strings.Cut(doc, "\n"+transcriptHeading+"\n")
	if !found {
		a.Body = doc
		return a
	}
	a.Body = strings.TrimSuffix(strings.TrimPrefix(body, "\n"), "\n")

	for _, line := range strings.Split(head, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			a.Title = strings.TrimPrefix(line, "# ")
		case strings.HasPrefix(line, urlField):
			a.URL = strings.TrimPrefix(line, urlField)
		case strings.HasPrefix(line, channelField):
			a.Channel = strings.TrimPrefix(line, channelField)
		case strings.HasPrefix(line, lengthField):
			a.Length = strings.TrimPrefix(line, lengthField)
		case strings.HasPrefix(line, videoIDField):
			a.VideoID = strings.TrimPrefix(line, videoIDField)
		}
	}
	return a
}
