package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/sonar/pkg/subsonic"
)

// Poll is one round of server observations gathered by the poller.
type Poll struct {
	Server     *subsonic.ServerInfo
	Scan       *subsonic.ScanStatus
	NowPlaying []subsonic.NowPlayingEntry
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Server              subsonic.ServerInfo
	HasServer           bool
	Scan                subsonic.ScanStatus
	HasScan             bool
	NowPlaying          []subsonic.NowPlayingEntry
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the server has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll. When err is non-nil the previous data is kept and
// only the error and failure count change.
func (s *Store) Update(p Poll, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.HasServer = p.Server != nil
	if p.Server != nil {
		s.snapshot.Server = *p.Server
	}
	// Scan status needs admin rights on some servers; keep the last value.
	if p.Scan != nil {
		s.snapshot.Scan = *p.Scan
		s.snapshot.HasScan = true
	}
	s.snapshot.NowPlaying = cloneEntries(p.NowPlaying)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.NowPlaying = cloneEntries(s.snapshot.NowPlaying)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(items []subsonic.NowPlayingEntry) []subsonic.NowPlayingEntry {
	if len(items) == 0 {
		return nil
	}
	dup := make([]subsonic.NowPlayingEntry, len(items))
	copy(dup, items)
	return dup
}
