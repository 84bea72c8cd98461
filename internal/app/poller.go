package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/sonar/internal/state"
	"github.com/five82/sonar/pkg/subsonic"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// Source is the subset of the Subsonic client the poller reads.
type Source interface {
	Ping(ctx context.Context) (subsonic.ServerInfo, error)
	GetScanStatus(ctx context.Context) (subsonic.ScanStatus, error)
	GetNowPlaying(ctx context.Context) ([]subsonic.NowPlayingEntry, error)
}

// StartPoller launches a background goroutine that refreshes the store. The
// wait between rounds doubles with each consecutive failure up to
// maxBackoff. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, src Source, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, src, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// calculateBackoff returns base doubled once per failure, capped at
// maxBackoff (or base, when base is already larger).
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	limit := max(maxBackoff, base)
	wait := base
	for range failures {
		wait *= 2
		if wait >= limit {
			return limit
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, src Source, logger *slog.Logger) {
	fail := func(op string, err error) {
		if ctx.Err() != nil {
			return
		}
		store.Update(state.Poll{}, err)
		logger.Warn(op+" failed", "error", err)
	}

	info, err := src.Ping(ctx)
	if err != nil {
		fail("ping", err)
		return
	}
	poll := state.Poll{Server: &info}

	scan, err := src.GetScanStatus(ctx)
	switch {
	case err == nil:
		poll.Scan = &scan
	case errors.Is(err, subsonic.ErrNotAuthorized):
		logger.Debug("scan status needs admin rights", "error", err)
	default:
		fail("scan status", err)
		return
	}

	entries, err := src.GetNowPlaying(ctx)
	if err != nil {
		fail("now playing", err)
		return
	}
	poll.NowPlaying = entries

	store.Update(poll, nil)
}
