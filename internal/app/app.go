package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/sonar/internal/config"
	"github.com/five82/sonar/internal/logging"
	"github.com/five82/sonar/internal/prefs"
	"github.com/five82/sonar/internal/state"
	"github.com/five82/sonar/internal/ui"
)

// Options configure the browse application.
type Options struct {
	Config     *config.Config // already loaded; ConfigPath is ignored when set
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/sonar/prefs.toml
	PollEvery  int    // seconds; zero uses ui.poll_seconds
}

// Run boots the browse TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		loaded, _, _, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	logger, err := logging.NewForTUI(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", "error", err)
	}

	client, err := cfg.NewClient(logger)
	if err != nil {
		return err
	}

	pollSeconds := cfg.UI.PollSeconds
	if opts.PollEvery > 0 {
		pollSeconds = opts.PollEvery
	}
	interval := time.Duration(pollSeconds) * time.Second

	store := &state.Store{}
	poller := logger.With("component", "poller")

	// Populate the store before the first frame.
	refresh(ctx, store, client, poller)
	StartPoller(ctx, store, client, interval, poller)

	logger.Info("browse started", "server", client.BaseURL(), "user", client.Username(), "poll", interval)
	return ui.Run(ctx, ui.Options{
		Library:       client,
		Store:         store,
		PollTick:      time.Second,
		ThemeName:     userPrefs.Theme,
		AlbumListType: userPrefs.AlbumListType,
		PrefsPath:     opts.PrefsPath,
		Logger:        logger.With("component", "ui"),
	})
}
