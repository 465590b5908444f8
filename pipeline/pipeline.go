package pipeline

import (
	"context"
	"time"

	"github.com/nijaru/yt-kb/db"
	"github.com/nijaru/yt-kb/discovery"
	"github.com/nijaru/yt-kb/errors"
	"github.com/nijaru/yt-kb/models"
	"github.com/nijaru/yt-kb/storage"
	"github.com/nijaru/yt-kb/transcription"
	"github.com/nijaru/yt-kb/utils"
	"github.com/sirupsen/logrus"
)

const (
	defaultProgressEvery = 10
	// discoveredChannel is written for items found by search, where the
	// channel name is not known.
	discoveredChannel = "YouTube"
)

// Ledger receives structured run and attempt records. *db.Ledger satisfies it.
type Ledger interface {
	StartRun(ctx context.Context, mode string) (string, error)
	RecordAttempt(ctx context.Context, a db.Attempt) error
	FinishRun(ctx context.Context, id string, total, skipped, success, failed int) error
}

type Config struct {
	Store       storage.Store
	Transcripts transcription.Source
	// Discovery is only required by RunDiscoverySearch.
	Discovery discovery.Source
	// InterCallDelay is slept after every transcript fetch.
	InterCallDelay time.Duration

	Ledger        Ledger
	Logger        *logrus.Logger
	ProgressEvery int
	Sleep         func(ctx context.Context, d time.Duration) error
}

// Pipeline fetches transcripts one item at a time and persists them,
// skipping items whose stored artifact is already a success.
type Pipeline struct {
	config Config
	logger *logrus.Entry
	locks  storage.KeyLocks
	runID  string
}

func New(cfg Config) (*Pipeline, error) {
	const op = "pipeline.New"
	if cfg.Store == nil {
		return nil, errors.InvalidInput(op, nil, "store is required")
	}
	if cfg.Transcripts == nil {
		return nil, errors.InvalidInput(op, nil, "transcript source is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = defaultProgressEvery
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}
	return &Pipeline{
		config: cfg,
		logger: logrus.NewEntry(cfg.Logger),
	}, nil
}

// ProcessItem makes sure folder holds a successful or freshly attempted
// artifact for item. Only storage errors and cancellation are returned; a
// failed fetch is recorded in the artifact itself.
func (p *Pipeline) ProcessItem(ctx context.Context, folder string, item models.WorkItem) (models.Outcome, error) {
	key := utils.StorageKey(item)
	logger := p.logger.WithFields(logrus.Fields{
		"folder":  folder,
		"key":     key,
		"videoID": item.ID,
	})

	unlock := p.locks.Lock(folder, key)
	defer unlock()

	doc, err := p.config.Store.Load(ctx, folder, key)
	switch {
	case err == nil:
		if models.ParseArtifact(doc).Successful() {
			logger.WithField("title", item.Title).Info("SKIP (exists)")
			return models.Outcome{Status: models.StatusSkipped}, nil
		}
		logger.Info("Stored transcript is a failure, refetching")
	case errors.IsNotFound(err):
	default:
		return models.Outcome{}, err
	}

	logger.WithField("title", item.Title).Info("Fetching")
	text, fetchErr := p.config.Transcripts.Fetch(ctx, item.ID)

	outcome := models.Outcome{Status: models.StatusCompleted}
	body := text
	if fetchErr != nil {
		// A fetch cut short by cancellation says nothing about the video.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Outcome{}, ctxErr
		}
		outcome = models.Outcome{Status: models.StatusFailed, Reason: fetchErr.Error()}
		body = models.FailureMarker(outcome.Reason)
		logger.WithField("reason", outcome.Reason).Warn("Transcript unavailable")
	}

	// A transcript already in hand is saved even if the run was just cancelled.
	saveCtx := context.WithoutCancel(ctx)
	if err := p.config.Store.Save(saveCtx, folder, key, models.NewArtifact(item, body).Render()); err != nil {
		logger.WithError(err).Error("Failed to save artifact")
		return models.Outcome{}, err
	}
	logger.WithField("status", outcome.Status).Info("Saved")

	p.recordAttempt(saveCtx, folder, key, item, outcome)

	if err := p.config.Sleep(ctx, p.config.InterCallDelay); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// RunBatch processes every item of every group in order.
func (p *Pipeline) RunBatch(ctx context.Context, groups []models.Group) (*Summary, error) {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}

	summary := newSummary("scrape")
	p.beginRun(ctx, summary)
	defer p.endRun(summary)
	// Runs that stop early still report what they did.
	defer summary.log(p.logger)

	processed := 0
	for _, g := range groups {
		summary.folder(g.Folder)
		p.logger.WithFields(logrus.Fields{"folder": g.Folder, "videos": len(g.Items)}).Info("Processing folder")

		for _, item := range g.Items {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			outcome, err := p.ProcessItem(ctx, g.Folder, item)
			summary.add(g.Folder, outcome)
			if err != nil {
				return summary, err
			}

			processed++
			if processed%p.config.ProgressEvery == 0 {
				p.logger.WithFields(logrus.Fields{"done": processed, "total": total}).Info("Progress")
			}
		}
	}

	return summary, nil
}

// RunDiscoverySearch runs each folder's queries through the discovery source
// and processes the results, dropping ids already seen in the same folder.
func (p *Pipeline) RunDiscoverySearch(ctx context.Context, plans []models.SearchPlan) (*Summary, error) {
	const op = "Pipeline.RunDiscoverySearch"
	if p.config.Discovery == nil {
		return nil, errors.InvalidInput(op, nil, "discovery source is required")
	}

	summary := newSummary("search")
	p.beginRun(ctx, summary)
	defer p.endRun(summary)
	defer summary.log(p.logger)

	processed := 0
	for _, plan := range plans {
		summary.folder(plan.Folder)
		logger := p.logger.WithField("folder", plan.Folder)
		logger.Info("Processing folder")

		seen := make(map[string]struct{})
		for _, q := range plan.Queries {
			logger.WithFields(logrus.Fields{"query": q.Text, "count": q.Count}).Info("Searching")

			candidates, err := p.config.Discovery.Search(ctx, q.Text, q.Count)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return summary, ctxErr
				}
				logger.WithError(err).WithField("query", q.Text).Warn("Search failed")
				continue
			}

			for _, c := range candidates {
				if _, dup := seen[c.ID]; dup {
					continue
				}
				seen[c.ID] = struct{}{}

				if err := ctx.Err(); err != nil {
					return summary, err
				}
				item := models.WorkItem{ID: c.ID, Title: c.Title, Channel: discoveredChannel}
				outcome, err := p.ProcessItem(ctx, plan.Folder, item)
				summary.add(plan.Folder, outcome)
				if err != nil {
					return summary, err
				}

				processed++
				if processed%p.config.ProgressEvery == 0 {
					p.logger.WithField("done", processed).Info("Progress")
				}
			}
		}

		counts := summary.Folder(plan.Folder)
		logger.WithFields(logrus.Fields{
			"success": counts.Success,
			"failed":  counts.Failed,
			"skipped": counts.Skipped,
		}).Info("Folder done")
	}

	return summary, nil
}

func (p *Pipeline) beginRun(ctx context.Context, s *Summary) {
	p.runID = ""
	if p.config.Ledger == nil {
		return
	}
	id, err := p.config.Ledger.StartRun(ctx, s.Mode)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to record run start")
		return
	}
	p.runID = id
	s.RunID = id
}

// endRun uses a fresh context so an interrupted run still gets its counters
// written.
func (p *Pipeline) endRun(s *Summary) {
	defer func() { p.runID = "" }()
	if p.config.Ledger == nil || p.runID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.config.Ledger.FinishRun(ctx, p.runID, s.Total, s.Skipped, s.Success, s.Failed); err != nil {
		p.logger.WithError(err).Warn("Failed to record run finish")
	}
}

func (p *Pipeline) recordAttempt(ctx context.Context, folder, key string, item models.WorkItem, outcome models.Outcome) {
	if p.config.Ledger == nil || p.runID == "" {
		return
	}
	err := p.config.Ledger.RecordAttempt(ctx, db.Attempt{
		RunID:      p.runID,
		Folder:     folder,
		StorageKey: key,
		VideoID:    item.ID,
		Title:      item.Title,
		Status:     outcome.Status,
		Reason:     outcome.Reason,
	})
	if err != nil {
		p.logger.WithError(err).WithField("key", key).Warn("Failed to record attempt")
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
