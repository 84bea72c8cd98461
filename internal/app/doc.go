// Package app wires configuration, the Subsonic client, the poller, and the
// browse UI together.
//
// # Overview
//
// Run is the whole lifecycle of "sonar browse":
//
//	1. Load config.toml, unless Options.Config is already set
//	2. Build a file-only logger so nothing is written over the TUI
//	3. Load prefs.toml; an unreadable file is logged and defaults are used
//	4. Build the client with config.NewClient
//	5. Refresh once so the first frame already has server information
//	6. Start the poller and block in ui.Run until the user quits
//
// Options.PollEvery overrides ui.poll_seconds for one run, and
// Options.PrefsPath points the UI at another preferences file.
//
// # Polling
//
// Each round calls ping, getScanStatus and getNowPlaying through the Source
// interface and hands the result to state.Store.Update. The first failing
// call ends the round: previous data is kept and the failure count grows.
// A "not authorized" answer to getScanStatus is expected for non-admin users
// and does not fail the round. Errors caused by the context being cancelled
// are not recorded, so quitting never flashes an error in the header.
//
// # Backoff
//
// The wait before the next round is the poll interval doubled once per
// consecutive failure:
//
//	interval 5s:  5s, 10s, 20s, 30s, 30s, ...
//	interval 45s: 45s, 45s, ...
//
// The ceiling is 30 seconds, or the interval itself when that is longer.
// One successful round returns to the plain interval.
//
// Browse requests (artists, albums, tracks) are issued by the UI on demand and
// never go through the poller.
//
// # Testing
//
// poller_test.go checks the backoff table, each refresh outcome against an
// httptest server (success, HTTP failure, tolerated "not authorized",
// cancelled context) and that StartPoller keeps refreshing until its
// context ends.
package app
