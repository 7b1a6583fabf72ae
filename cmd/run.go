package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/p2tutor/internal/app"
	"github.com/abhisek/p2tutor/internal/config"
	"github.com/abhisek/p2tutor/internal/logger"
	"github.com/abhisek/p2tutor/internal/metrics"
	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/store"
	"github.com/abhisek/p2tutor/internal/tutor"
)

// deps holds everything a command needs to run tutoring sessions.
type deps struct {
	cfg      *config.Config
	log      *zap.Logger
	progress *progress.FileStore
	store    *store.Store // nil when the event log could not be opened
	metrics  *metrics.Metrics
	rng      *rand.Rand
}

// setup loads configuration and opens the stores. console receives
// warnings for line-oriented commands; the TUI passes nil.
func setup(cmd *cobra.Command, console io.Writer) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logFile := cfg.LogFile
	if logFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		logFile = filepath.Join(dir, "p2tutor.log")
	}
	log, err := logger.New(logger.Options{File: logFile, Level: cfg.LogLevel, Console: console})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	d := &deps{
		cfg:      cfg,
		log:      log,
		progress: progress.NewFileStore(cfg.ProgressFile),
		metrics:  metrics.New(),
		rng:      problemgen.NewRand(cfg.Seed),
	}
	if cfg.ConfigFile != "" {
		log.Debug("config loaded", zap.String("file", cfg.ConfigFile))
	}

	if st, err := openEventStore(cfg); err != nil {
		log.Warn("event log unavailable", zap.Error(err))
	} else {
		d.store = st
	}
	return d, nil
}

// openEventStore opens the SQLite event log at the configured path.
func openEventStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DB
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}

// events returns the event log, or nil when none is open.
func (d *deps) events() store.EventRepo {
	if d.store == nil {
		return nil
	}
	return d.store.EventRepo()
}

// newTutor builds a tutor session reporting to p.
func (d *deps) newTutor(p tutor.Presenter) *tutor.Tutor {
	return tutor.New(tutor.Options{
		Store:     d.progress,
		Presenter: p,
		Rand:      d.rng,
		Events:    d.events(),
		Metrics:   d.metrics,
		Logger:    d.log,
	})
}

// Close flushes metrics and logs and closes the event log.
func (d *deps) Close() {
	if d.cfg.MetricsFile != "" {
		if err := d.metrics.WriteTextfile(d.cfg.MetricsFile); err != nil {
			d.log.Warn("write metrics", zap.Error(err))
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			d.log.Warn("close event log", zap.Error(err))
		}
	}
	_ = d.log.Sync()
}

// runApp opens the stores and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	d, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	d.log.Info("tui started", zap.String("progress_file", d.progress.Path()))
	return app.Run(app.Options{
		Progress:   d.progress,
		Events:     d.events(),
		NewTutor:   d.newTutor,
		SkipSplash: skipSplash,
	})
}
