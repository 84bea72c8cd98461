package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/sonar/internal/prefs"
	"github.com/five82/sonar/internal/state"
	"github.com/five82/sonar/pkg/subsonic"
)

type fakeLibrary struct {
	artists  subsonic.Artists
	artist   subsonic.ArtistWithAlbums
	album    subsonic.AlbumWithSongs
	list     []subsonic.AlbumID3
	listType subsonic.AlbumListType
	err      error
}

func (f *fakeLibrary) GetArtists(context.Context, string) (subsonic.Artists, error) {
	return f.artists, f.err
}

func (f *fakeLibrary) GetArtist(_ context.Context, id string) (subsonic.ArtistWithAlbums, error) {
	if id != f.artist.ID {
		return subsonic.ArtistWithAlbums{}, &subsonic.APIError{Code: subsonic.ErrNotFound}
	}
	return f.artist, f.err
}

func (f *fakeLibrary) GetAlbum(_ context.Context, id string) (subsonic.AlbumWithSongs, error) {
	if id != f.album.ID {
		return subsonic.AlbumWithSongs{}, &subsonic.APIError{Code: subsonic.ErrNotFound}
	}
	return f.album, f.err
}

func (f *fakeLibrary) GetAlbumList2(_ context.Context, t subsonic.AlbumListType, _ subsonic.AlbumListOptions) ([]subsonic.AlbumID3, error) {
	f.listType = t
	return f.list, f.err
}

func newLibrary() *fakeLibrary {
	return &fakeLibrary{
		artists: subsonic.Artists{Index: []subsonic.IndexID3{
			{Name: "B", Artists: []subsonic.ArtistID3{{ID: "ar1", Name: "Björk", AlbumCount: 2}, {ID: "ar2", Name: "Boards of Canada", AlbumCount: 1}}},
			{Name: "P", Artists: []subsonic.ArtistID3{{ID: "ar3", Name: "Portishead", AlbumCount: 3}}},
		}},
		artist: subsonic.ArtistWithAlbums{
			ArtistID3: subsonic.ArtistID3{ID: "ar1", Name: "Björk"},
			Albums:    []subsonic.AlbumID3{{ID: "al1", Name: "Homogenic", Year: 1997}, {ID: "al2", Name: "Vespertine", Year: 2001}},
		},
		album: subsonic.AlbumWithSongs{
			AlbumID3: subsonic.AlbumID3{ID: "al1", Name: "Homogenic", Artist: "Björk", Year: 1997, Duration: 2620},
			Songs:    []subsonic.Child{{ID: "s1", Title: "Hunter", Track: 1, Duration: 255}, {ID: "s2", Title: "Jóga", Track: 2, Duration: 305}},
		},
		list: []subsonic.AlbumID3{{ID: "al9", Name: "Dummy", Artist: "Portishead"}},
	}
}

func newTestModel(t *testing.T, lib Library) Model {
	t.Helper()
	m := New(Options{
		Library:   lib,
		Store:     &state.Store{},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	m, _ = step(t, m, cmd())
	return m
}

func plain(s string) string {
	return ansi.Strip(s)
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, lib *fakeLibrary) Model {
	t.Helper()
	m := newTestModel(t, lib)
	cmd := m.loadArtistsCmd()
	return run(t, m, cmd)
}

func TestArtistsLoadFlattensIndex(t *testing.T) {
	m := loadedModel(t, newLibrary())

	if m.loading {
		t.Fatalf("loading still set after artistsMsg")
	}
	got := m.visibleArtists()
	if len(got) != 3 || got[2].Name != "Portishead" {
		t.Fatalf("visibleArtists = %+v", got)
	}
	if view := plain(m.View()); !strings.Contains(view, "Artists (3)") || !strings.Contains(view, "Boards of Canada") {
		t.Fatalf("view missing artists:\n%s", view)
	}
}

func TestFilterNarrowsAndClears(t *testing.T) {
	m := loadedModel(t, newLibrary())

	m, _ = step(t, m, press("/"))
	if !m.filtering {
		t.Fatalf("filtering = false after /")
	}
	for _, r := range "BJÖ" {
		m, _ = step(t, m, press(string(r)))
	}
	got := m.visibleArtists()
	if len(got) != 1 || got[0].ID != "ar1" {
		t.Fatalf("filtered artists = %+v, want only Björk", got)
	}

	m, _ = step(t, m, press("enter"))
	if m.filtering || m.artistCursor.filter != "BJÖ" {
		t.Fatalf("after enter filtering=%v filter=%q", m.filtering, m.artistCursor.filter)
	}

	m, _ = step(t, m, press("esc"))
	if m.artistCursor.filter != "" || len(m.visibleArtists()) != 3 {
		t.Fatalf("esc did not clear filter: %q", m.artistCursor.filter)
	}
}

func TestDrillDownAndBack(t *testing.T) {
	m := loadedModel(t, newLibrary())

	var cmd tea.Cmd
	m, cmd = step(t, m, press("enter"))
	m = run(t, m, cmd)
	if m.view != ViewAlbums || !m.albumsForArtist || m.albumsTitle != "Albums by Björk" {
		t.Fatalf("view=%v forArtist=%v title=%q", m.view, m.albumsForArtist, m.albumsTitle)
	}

	m, cmd = step(t, m, press("enter"))
	m = run(t, m, cmd)
	if m.view != ViewTracks || m.album.Name != "Homogenic" {
		t.Fatalf("view=%v album=%q, want tracks of Homogenic", m.view, m.album.Name)
	}
	if view := plain(m.View()); !strings.Contains(view, "Hunter") || !strings.Contains(view, "5:05") {
		t.Fatalf("track view missing songs:\n%s", view)
	}

	m, _ = step(t, m, press("esc"))
	if m.view != ViewAlbums {
		t.Fatalf("view after esc = %v, want albums", m.view)
	}
	m, _ = step(t, m, press("esc"))
	if m.view != ViewArtists {
		t.Fatalf("view after second esc = %v, want artists", m.view)
	}
}

func TestNavigationClampsToList(t *testing.T) {
	m := loadedModel(t, newLibrary())

	m, _ = step(t, m, press("G"))
	if m.artistCursor.selected != 2 {
		t.Fatalf("selected after G = %d, want 2", m.artistCursor.selected)
	}
	m, _ = step(t, m, press("j"))
	if m.artistCursor.selected != 2 {
		t.Fatalf("selected moved past end: %d", m.artistCursor.selected)
	}
	m, _ = step(t, m, press("g"))
	m, _ = step(t, m, press("k"))
	if m.artistCursor.selected != 0 {
		t.Fatalf("selected moved before start: %d", m.artistCursor.selected)
	}
}

func TestAlbumListUsesAndPersistsOrdering(t *testing.T) {
	lib := newLibrary()
	m := loadedModel(t, lib)

	var cmd tea.Cmd
	m, cmd = step(t, m, press("2"))
	m = run(t, m, cmd)
	if lib.listType != subsonic.AlbumListNewest || m.albumsTitle != "Albums: Newest" {
		t.Fatalf("listType=%q title=%q", lib.listType, m.albumsTitle)
	}

	m, cmd = step(t, m, press("o"))
	_ = run(t, m, cmd)
	if lib.listType != subsonic.AlbumListRecent {
		t.Fatalf("listType after o = %q, want recent", lib.listType)
	}

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.AlbumListType != "recent" {
		t.Fatalf("saved AlbumListType = %q, want recent", saved.AlbumListType)
	}
}

func TestNextListTypeSkipsParameterisedOrderings(t *testing.T) {
	seen := map[subsonic.AlbumListType]bool{}
	current := subsonic.AlbumListNewest
	for range subsonic.AlbumListTypes {
		current = nextListType(current)
		seen[current] = true
	}
	if seen[subsonic.AlbumListByYear] || seen[subsonic.AlbumListByGenre] {
		t.Fatalf("cycle includes byYear or byGenre: %v", seen)
	}
	if !seen[subsonic.AlbumListStarred] {
		t.Fatalf("cycle misses starred: %v", seen)
	}
	if got := listTypeLabel(subsonic.AlbumListAlphabeticalByArtist); got != "Alphabetical By Artist" {
		t.Fatalf("listTypeLabel = %q", got)
	}
}

func TestCycleThemePersists(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = step(t, m, press("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestBrowseErrorShowsConditionLabel(t *testing.T) {
	lib := newLibrary()
	lib.err = &subsonic.APIError{Code: subsonic.ErrWrongCredentials, Message: "Wrong username or password"}
	m := loadedModel(t, lib)

	if m.errorMsg != "load artists: wrong username or password" {
		t.Fatalf("errorMsg = %q", m.errorMsg)
	}
	if !strings.Contains(plain(m.View()), "wrong username or password") {
		t.Fatalf("header missing error:\n%s", plain(m.View()))
	}
}

func TestHeaderShowsServerAndScan(t *testing.T) {
	m := newTestModel(t, nil)
	store := &state.Store{}
	store.Update(state.Poll{
		Server: &subsonic.ServerInfo{APIVersion: "1.16.1", ServerType: "navidrome", ServerVersion: "0.53.3", OpenSubsonic: true},
		Scan:   &subsonic.ScanStatus{Scanning: true, Count: 812},
	}, nil)
	m, _ = step(t, m, snapshotMsg(store.Snapshot()))

	header := plain(m.renderHeader())
	for _, want := range []string{"navidrome 0.53.3", "OpenSubsonic", "Scanning 812"} {
		if !strings.Contains(header, want) {
			t.Fatalf("header missing %q:\n%s", want, header)
		}
	}
}

func TestHeaderShowsOffline(t *testing.T) {
	m := newTestModel(t, nil)
	store := &state.Store{}
	store.Update(state.Poll{}, errors.New("dial tcp: connection refused"))
	store.Update(state.Poll{}, errors.New("dial tcp: connection refused"))
	m, _ = step(t, m, snapshotMsg(store.Snapshot()))

	header := plain(m.renderHeader())
	if !strings.Contains(header, "OFFLINE") || !strings.Contains(header, "connection refused") {
		t.Fatalf("header = %q", header)
	}
}

func TestNowPlayingOpensAlbum(t *testing.T) {
	lib := newLibrary()
	m := newTestModel(t, lib)
	store := &state.Store{}
	store.Update(state.Poll{
		Server: &subsonic.ServerInfo{APIVersion: "1.16.1"},
		NowPlaying: []subsonic.NowPlayingEntry{
			{Child: subsonic.Child{ID: "s1", Title: "Hunter", AlbumID: "al1"}, Username: "alice", PlayerName: "web"},
		},
	}, nil)
	m, _ = step(t, m, snapshotMsg(store.Snapshot()))
	m, _ = step(t, m, press("3"))

	if view := plain(m.View()); !strings.Contains(view, "alice@web") {
		t.Fatalf("now playing view missing entry:\n%s", view)
	}

	var cmd tea.Cmd
	m, cmd = step(t, m, press("enter"))
	m = run(t, m, cmd)
	if m.view != ViewTracks || m.tracksFrom != ViewNowPlaying {
		t.Fatalf("view=%v from=%v", m.view, m.tracksFrom)
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&subsonic.APIError{Code: subsonic.ErrNotFound}, "requested data was not found"},
		{&subsonic.APIError{Code: 99, Message: "odd"}, "error code 99 (odd)"},
		{fmt.Errorf("wrap: %w", &subsonic.HTTPStatusError{Endpoint: "ping", StatusCode: 502}), "HTTP 502 from ping"},
		{&subsonic.ParseError{Endpoint: "getAlbum", Err: subsonic.ErrUnexpectedJSON}, "unexpected response from getAlbum"},
		{context.DeadlineExceeded, "timeout"},
		{errors.New("lookup music.local: no such host"), "host not found"},
		{errors.New("other"), "other"},
	}
	for _, tt := range tests {
		if got := describeError(tt.err); got != tt.want {
			t.Fatalf("describeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
