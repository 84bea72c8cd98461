// Package ui implements the sonar browse TUI on Bubble Tea.
//
// # Views
//
//   - Artists: the getArtists index flattened into one list.
//   - Albums: either one artist's albums (getArtist) or a server album list
//     (getAlbumList2) in the ordering chosen with "o".
//   - Tracks: the songs of one album (getAlbum) in a scrollable viewport.
//   - Now Playing: entries from the poller's last getNowPlaying. Opening an
//     entry jumps to its album.
//
// Artists and Albums accept a "/" filter that narrows the list as the user
// types. Matching uses Unicode case folding, so "motorhead" finds
// "MOTORHEAD" and "björk" finds "BJÖRK".
//
// # Keys
//
//	q, ctrl+c       quit
//	?               toggle help
//	1 / 2 / 3       artists, album list, now playing
//	tab, shift+tab  next and previous view
//	j/k, up/down    move; g/G top and bottom
//	ctrl+d, ctrl+u  half a page down and up
//	enter, l        open the selection
//	/               filter; enter keeps it, esc clears it
//	esc, h          back one level
//	r               reload the current view
//	o               next album list ordering
//	T               next theme
//
// Orderings that need an argument (byYear, byGenre) are skipped by "o";
// they are available from "sonar albums" instead.
//
// # Data Flow
//
// Server status never blocks the UI: the app package's poller writes
// state.Store, and a one-second tick copies the latest snapshot into the
// model. Browse requests run as tea.Cmd functions against the Library
// interface with a 20 second timeout and come back as messages. Library is
// satisfied by *subsonic.Client and by the fakes in app_test.go.
//
// # Header
//
// The header shows the server type and version, the scan state and the
// time of the last poll. Its status cell is one of:
//
//	Connecting  no poll has finished yet
//	OFFLINE     two or more consecutive poll failures
//	ERROR       the last poll failed
//	!           the last browse request failed
//
// Server-reported failures are shown by their documented condition, for
// example "wrong username or password", followed by the server's message.
//
// # Themes and Preferences
//
// Nightfox, Kanagawa and Slate are built in; an unknown name falls back to
// Nightfox. "T" cycles the theme and "o" the album ordering. Both are written
// to prefs.toml immediately and restored on the next start. A failed write
// is logged, flagged with "!" and the UI carries on.
//
// # Testing
//
// app_test.go drives Model.Update with key and result messages against a
// fake Library and checks the rendered views. strings_test.go covers
// truncation, padding, durations and filter matching; theme_test.go the
// theme list and fallback.
package ui
