package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nijaru/yt-kb/config"
	"github.com/nijaru/yt-kb/db"
	"github.com/nijaru/yt-kb/discovery"
	"github.com/nijaru/yt-kb/logger"
	"github.com/nijaru/yt-kb/pipeline"
	"github.com/nijaru/yt-kb/storage"
	"github.com/nijaru/yt-kb/transcription"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

var cmdFlags struct {
	envFile string
	catalog string
	folders []string
}

var rootCmd = &cobra.Command{
	Use:           "yt-kb",
	Short:         "Build a markdown knowledge base from YouTube transcripts.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(cmdFlags.envFile)
	},
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("yt-kb failed")
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cmdFlags.envFile, "env-file", "", "Load environment variables from a dotenv file")
	rootCmd.PersistentFlags().StringVar(&cmdFlags.catalog, "catalog", "", "JSON catalog to use instead of the built-in one")
	rootCmd.PersistentFlags().StringSliceVar(&cmdFlags.folders, "folder", nil, "Only process these folders (repeatable)")

	rootCmd.AddCommand(scrapeCmd, searchCmd, runsCmd)
}

// app holds everything a run needs, built from the environment.
type app struct {
	cfg     *config.Config
	logger  *logrus.Logger
	store   storage.Store
	ledger  *db.Ledger
	closers []io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	log, logFile, err := logger.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	// Sources log through the standard logger.
	logrus.SetOutput(log.Out)
	logrus.SetLevel(log.GetLevel())
	logrus.SetFormatter(log.Formatter)

	a := &app{cfg: cfg, logger: log, closers: []io.Closer{logFile}}

	a.store, err = newStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.DBPath != "" {
		a.ledger, err = db.Open(cfg.DBPath)
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to open run ledger")
		}
		a.closers = append(a.closers, a.ledger)
	}

	log.WithFields(logrus.Fields{
		"backend": cfg.StorageBackend,
		"root":    cfg.Root,
		"ledger":  cfg.DBPath != "",
	}).Debug("Configuration loaded")
	return a, nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == config.BackendSpaces {
		s, err := storage.NewSpacesStore(ctx, storage.SpacesConfig{
			AccessKey: cfg.Spaces.AccessKey,
			SecretKey: cfg.Spaces.SecretKey,
			Region:    cfg.Spaces.Region,
			Endpoint:  cfg.Spaces.Endpoint,
			Bucket:    cfg.Spaces.Bucket,
			Prefix:    cfg.Spaces.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := storage.NewFileStore(cfg.Root)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) pipeline(delay time.Duration, withDiscovery bool) (*pipeline.Pipeline, error) {
	pc := pipeline.Config{
		Store:          a.store,
		Transcripts:    a.transcripts(),
		InterCallDelay: delay,
		Logger:         a.logger,
	}
	if withDiscovery {
		pc.Discovery = discovery.NewYtDlpSearcher(discovery.Config{
			YtDlpPath:         a.cfg.YtDlp.Path,
			Timeout:           a.cfg.Discovery.Timeout,
			RateLimit:         a.cfg.Discovery.RateLimit,
			RateLimitInterval: a.cfg.Discovery.RateLimitInterval,
		})
	}
	// A nil *db.Ledger must not become a non-nil interface.
	if a.ledger != nil {
		pc.Ledger = a.ledger
	}
	return pipeline.New(pc)
}

func (a *app) transcripts() transcription.Source {
	cfg := transcription.Config{
		YtDlpPath: a.cfg.YtDlp.Path,
		Languages: a.cfg.YtDlp.Languages,
		TempDir:   a.cfg.TempDir,
	}
	if a.cfg.TranscriptBackend == config.TranscriptsYtDlp {
		return transcription.NewYtDlpSource(cfg)
	}
	return transcription.NewAPISource(cfg)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close resource")
		}
	}
}
