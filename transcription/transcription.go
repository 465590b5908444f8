package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
	"github.com/nijaru/yt-kb/runner"
	"github.com/nijaru/yt-kb/validation"
	"github.com/sirupsen/logrus"
)

// Source fetches the full transcript text for a video id. Any error means
// the transcript is unavailable; its message is recorded verbatim.
type Source interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

type SourceFunc func(ctx context.Context, videoID string) (string, error)

func (f SourceFunc) Fetch(ctx context.Context, videoID string) (string, error) {
	return f(ctx, videoID)
}

type Config struct {
	YtDlpPath string
	Languages []string
	TempDir   string
}

// YtDlpSource pulls caption tracks with yt-dlp and flattens them to text.
type YtDlpSource struct {
	config Config
	run    runner.Func
}

func NewYtDlpSource(cfg Config) *YtDlpSource {
	if cfg.YtDlpPath == "" {
		cfg.YtDlpPath = "yt-dlp"
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en"}
	}
	return &YtDlpSource{config: cfg, run: runner.Execute}
}

func (s *YtDlpSource) Fetch(ctx context.Context, videoID string) (string, error) {
	const op = "YtDlpSource.Fetch"
	logger := logrus.WithFields(logrus.Fields{"operation": op, "videoID": videoID})

	if err := validation.ValidateVideoID(videoID); err != nil {
		return "", errors.TranscriptUnavailable(op, nil, err.Error())
	}

	dir, err := os.MkdirTemp(s.config.TempDir, "captions-")
	if err != nil {
		return "", errors.TranscriptUnavailable(op, nil, fmt.Sprintf("failed to create temp dir: %v", err))
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.WithError(err).WithField("dir", dir).Error("Failed to remove caption dir")
		}
	}()

	args := buildArgs(videoID, s.config.Languages, dir)
	logger.WithField("args", args).Debug("Executing yt-dlp")

	if _, err := s.run(ctx, s.config.YtDlpPath, args...); err != nil {
		logger.WithError(err).Warn("yt-dlp caption download failed")
		return "", errors.TranscriptUnavailable(op, nil, err.Error())
	}

	filename, err := pickCaptionFile(dir, videoID, s.config.Languages)
	if err != nil {
		return "", errors.TranscriptUnavailable(op, nil, err.Error())
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.TranscriptUnavailable(op, nil, fmt.Sprintf("failed to read captions: %v", err))
	}

	text, err := ParseJSON3(data)
	if err != nil {
		return "", errors.TranscriptUnavailable(op, nil, err.Error())
	}
	if text == "" {
		return "", errors.TranscriptUnavailable(op, nil, "transcript is empty")
	}

	logger.WithField("length", len(text)).Info("Transcript fetched")
	return text, nil
}

func buildArgs(videoID string, languages []string, dir string) []string {
	return []string{
		"--quiet",
		"--no-warnings",
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(languages, ","),
		"--sub-format", "json3",
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
		models.WatchURL(videoID),
	}
}

// pickCaptionFile returns the caption file for the most preferred language
// that yt-dlp wrote, falling back to any json3 file in dir.
func pickCaptionFile(dir, videoID string, languages []string) (string, error) {
	for _, lang := range languages {
		candidate := filepath.Join(dir, fmt.Sprintf("%s.%s.json3", videoID, lang))
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json3"))
	if err != nil {
		return "", fmt.Errorf("failed to list captions: %v", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no captions available for %s", videoID)
	}
	return matches[0], nil
}

type json3Doc struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// ParseJSON3 flattens a YouTube json3 caption document into one line per
// caption event.
func ParseJSON3(data []byte) (string, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse captions: %v", err)
	}

	lines := make([]string, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		line := strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
