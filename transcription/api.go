package transcription

import (
	"context"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"
	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/validation"
	"github.com/sirupsen/logrus"
)

// transcriptClient is the part of the yt_transcript client APISource uses.
type transcriptClient interface {
	GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error)
}

// APISource reads captions straight from YouTube's transcript endpoint.
type APISource struct {
	client    transcriptClient
	languages []string
}

func NewAPISource(cfg Config) *APISource {
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en"}
	}
	formatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)
	client := yt_transcript.NewClient(yt_transcript.WithFormatter(formatter))
	return &APISource{client: client, languages: cfg.Languages}
}

type fetchResult struct {
	text string
	err  error
}

func (s *APISource) Fetch(ctx context.Context, videoID string) (string, error) {
	const op = "APISource.Fetch"
	logger := logrus.WithFields(logrus.Fields{"operation": op, "videoID": videoID})

	if err := validation.ValidateVideoID(videoID); err != nil {
		return "", errors.TranscriptUnavailable(op, nil, err.Error())
	}

	// The client takes no context, so a cancelled run stops waiting on it.
	done := make(chan fetchResult, 1)
	go func() {
		text, err := s.client.GetFormattedTranscripts(videoID, s.languages, false)
		done <- fetchResult{text: text, err: err}
	}()

	var res fetchResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		logger.WithError(res.err).Warn("Transcript request failed")
		return "", errors.TranscriptUnavailable(op, nil, res.err.Error())
	}

	text := joinLines(res.text)
	if text == "" {
		return "", errors.TranscriptUnavailable(op, nil, "transcript is empty")
	}
	logger.WithField("length", len(text)).Info("Transcript fetched")
	return text, nil
}

// joinLines puts one caption snippet per line and drops blank ones.
func joinLines(formatted string) string {
	raw := strings.Split(strings.ReplaceAll(formatted, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
