package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
	"github.com/nijaru/yt-kb/runner"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Source finds candidate videos for a free-text query, best match first.
type Source interface {
	Search(ctx context.Context, query string, count int) ([]models.Candidate, error)
}

type SourceFunc func(ctx context.Context, query string, count int) ([]models.Candidate, error)

func (f SourceFunc) Search(ctx context.Context, query string, count int) ([]models.Candidate, error) {
	return f(ctx, query, count)
}

type Config struct {
	YtDlpPath string
	// Timeout bounds a single search call.
	Timeout           time.Duration
	RateLimit         int
	RateLimitInterval time.Duration
}

// YtDlpSearcher runs "ytsearch" queries through yt-dlp.
type YtDlpSearcher struct {
	config  Config
	limiter *rate.Limiter
	run     runner.Func
}

func NewYtDlpSearcher(cfg Config) *YtDlpSearcher {
	if cfg.YtDlpPath == "" {
		cfg.YtDlpPath = "yt-dlp"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 && cfg.RateLimitInterval > 0 {
		limit = rate.Every(cfg.RateLimitInterval / time.Duration(cfg.RateLimit))
	}
	burst := cfg.RateLimit
	if burst < 1 {
		burst = 1
	}
	return &YtDlpSearcher{
		config:  cfg,
		limiter: rate.NewLimiter(limit, burst),
		run:     runner.Execute,
	}
}

func (s *YtDlpSearcher) Search(ctx context.Context, query string, count int) ([]models.Candidate, error) {
	const op = "YtDlpSearcher.Search"
	logger := logrus.WithFields(logrus.Fields{"operation": op, "query": query, "count": count})

	if strings.TrimSpace(query) == "" {
		return nil, errors.DiscoveryFailure(op, nil, "query is required")
	}
	if count <= 0 {
		return nil, errors.DiscoveryFailure(op, nil, fmt.Sprintf("invalid result count: %d", count))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.DiscoveryFailure(op, err, "rate limiter")
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	output, err := s.run(ctx, s.config.YtDlpPath, buildArgs(query, count)...)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		logger.WithField("timeout", s.config.Timeout).Warn("Search timed out")
		return nil, errors.DiscoveryFailure(op, ctx.Err(), "search timed out")
	}

	// yt-dlp can exit non-zero after printing some results; keep those.
	candidates := ParseSearchOutput(output)
	if err != nil {
		if len(candidates) == 0 {
			logger.WithError(err).Warn("Search failed")
			return nil, errors.DiscoveryFailure(op, err, "search failed")
		}
		logger.WithError(err).WithField("results", len(candidates)).Warn("Search exited with an error, using partial results")
	}
	logger.WithField("results", len(candidates)).Debug("Search completed")
	return candidates, nil
}

func buildArgs(query string, count int) []string {
	return []string{
		"--flat-playlist",
		"--no-warnings",
		"--print", "%(id)s\t%(title)s",
		fmt.Sprintf("ytsearch%d:%s", count, query),
	}
}

// ParseSearchOutput reads "id<TAB>title" lines in order. Lines without a tab
// are ignored.
func ParseSearchOutput(output []byte) []models.Candidate {
	var candidates []models.Candidate
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		id, title, ok := strings.Cut(strings.TrimRight(line, "\r"), "\t")
		if !ok || id == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{ID: id, Title: title})
	}
	return candidates
}
