package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/five82/sonar/internal/logging"
	"github.com/five82/sonar/internal/state"
	"github.com/five82/sonar/pkg/subsonic"
)

func TestCalculateBackoff(t *testing.T) {
	base := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 40, 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateBackoff(tt.failures, base); got != tt.want {
				t.Fatalf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_LongIntervalIsCeiling(t *testing.T) {
	if got := calculateBackoff(3, time.Minute); got != time.Minute {
		t.Fatalf("calculateBackoff(3, 1m) = %v, want 1m", got)
	}
}

func newServer(t *testing.T, handlers map[string]string) *subsonic.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"subsonic-response":{"status":"ok","version":"1.16.1","type":"navidrome","openSubsonic":true%s}}`, body)
	}))
	t.Cleanup(srv.Close)

	client, err := subsonic.NewClient(srv.URL, "alice", subsonic.Token("sesame"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestRefresh_StoresServerScanAndNowPlaying(t *testing.T) {
	client := newServer(t, map[string]string{
		"/rest/ping":          "",
		"/rest/getScanStatus": `,"scanStatus":{"scanning":false,"count":1234}`,
		"/rest/getNowPlaying": `,"nowPlaying":{"entry":{"id":"s1","title":"Blue","username":"bob","minutesAgo":2}}`,
	})

	var store state.Store
	refresh(context.Background(), &store, client, logging.NewNop())

	snap := store.Snapshot()
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if !snap.HasServer || snap.Server.ServerType != "navidrome" || !snap.Server.OpenSubsonic {
		t.Fatalf("Server = %+v", snap.Server)
	}
	if !snap.HasScan || snap.Scan.Count != 1234 {
		t.Fatalf("Scan = %+v", snap.Scan)
	}
	if len(snap.NowPlaying) != 1 || snap.NowPlaying[0].Title != "Blue" || snap.NowPlaying[0].Username != "bob" {
		t.Fatalf("NowPlaying = %+v", snap.NowPlaying)
	}
}

func TestRefresh_HTTPFailureCountsAsFailure(t *testing.T) {
	client := newServer(t, map[string]string{})

	var store state.Store
	refresh(context.Background(), &store, client, logging.NewNop())

	snap := store.Snapshot()
	var statusErr *subsonic.HTTPStatusError
	if !errors.As(snap.LastError, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("LastError = %v, want HTTP 404", snap.LastError)
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

type fakeSource struct {
	scanErr error
	calls   int
}

func (f *fakeSource) Ping(context.Context) (subsonic.ServerInfo, error) {
	f.calls++
	return subsonic.ServerInfo{APIVersion: "1.16.1"}, nil
}

func (f *fakeSource) GetScanStatus(context.Context) (subsonic.ScanStatus, error) {
	return subsonic.ScanStatus{}, f.scanErr
}

func (f *fakeSource) GetNowPlaying(context.Context) ([]subsonic.NowPlayingEntry, error) {
	return nil, nil
}

func TestRefresh_NotAuthorizedScanIsTolerated(t *testing.T) {
	src := &fakeSource{scanErr: &subsonic.APIError{Code: subsonic.ErrNotAuthorized, Message: "admin only"}}

	var store state.Store
	refresh(context.Background(), &store, src, logging.NewNop())

	snap := store.Snapshot()
	if snap.LastError != nil || !snap.HasServer || snap.HasScan {
		t.Fatalf("snapshot = %+v, want server without scan and no error", snap)
	}
}

func TestRefresh_CancelledContextRecordsNothing(t *testing.T) {
	src := &fakeSource{scanErr: context.Canceled}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var store state.Store
	refresh(ctx, &store, src, logging.NewNop())

	if snap := store.Snapshot(); snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("snapshot = %+v, want untouched", snap)
	}
}

func TestStartPoller_RefreshesUntilCancelled(t *testing.T) {
	src := &countingSource{ticks: make(chan struct{}, 8)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	StartPoller(ctx, &store, src, 10*time.Millisecond, logging.NewNop())

	for i := 0; i < 2; i++ {
		select {
		case <-src.ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("poller did not refresh (round %d)", i+1)
		}
	}
}

type countingSource struct {
	fakeSource
	ticks chan struct{}
}

func (c *countingSource) Ping(ctx context.Context) (subsonic.ServerInfo, error) {
	select {
	case c.ticks <- struct{}{}:
	default:
	}
	return subsonic.ServerInfo{}, nil
}
