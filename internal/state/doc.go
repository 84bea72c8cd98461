// Package state shares the latest server observations between the poller
// and the browse UI.
//
// # Overview
//
// The poller is the single writer: each round it pings the server, reads the
// scan status and the now-playing list, then calls Store.Update. The UI reads
// Store.Snapshot on every tick. An RWMutex guards the snapshot and is held
// only while copying, never during network I/O or rendering.
//
// # Types
//
//   - Poll: one round of observations, as gathered by the poller. Server
//     and Scan are pointers so "not read this round" differs from a zero
//     value.
//   - Snapshot: what the UI renders. HasServer and HasScan say whether the
//     matching field has ever been filled.
//   - Store: the guarded Snapshot. The zero Store is ready to use.
//
// # Update Semantics
//
//	store.Update(poll, nil)  // replace server info and now playing, clear error
//	store.Update(Poll{}, err) // keep previous data, record err, count failure
//
// Both forms stamp LastUpdated, so the header can show how stale the data
// is even while the server is down.
//
// Scan status is sticky: a successful poll that could not read it (for
// example a non-admin user) keeps the last known value.
//
// # Copy Semantics
//
// Snapshot clones the now-playing slice and wraps LastError so callers can
// neither mutate stored data nor compare error identity. errors.As still
// reaches the underlying *subsonic.APIError, which is how the header prints
// the documented condition for a server-reported failure:
//
//	snap := store.Snapshot()
//	var apiErr *subsonic.APIError
//	if errors.As(snap.LastError, &apiErr) {
//		status = apiErr.Code.String()
//	}
//
// # Offline Detection
//
// After two consecutive failures Snapshot.IsOffline reports true and the
// header switches to its offline banner. A single failure only marks the
// status as an error, since one dropped request is common on a busy server.
// The next successful Update resets the count.
//
// # Testing
//
// store_test.go checks that snapshots are independent copies, that
// failures keep earlier data, that scan status survives a poll without it,
// and how consecutive failures count up and reset.
package state
