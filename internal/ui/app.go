package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sonar/internal/prefs"
	"github.com/five82/sonar/internal/state"
	"github.com/five82/sonar/pkg/subsonic"
)

// View is the active screen.
type View int

const (
	ViewArtists View = iota
	ViewAlbums
	ViewTracks
	ViewNowPlaying
)

// Library is the part of the Subsonic client the browser calls on demand.
type Library interface {
	GetArtists(ctx context.Context, musicFolderID string) (subsonic.Artists, error)
	GetArtist(ctx context.Context, id string) (subsonic.ArtistWithAlbums, error)
	GetAlbum(ctx context.Context, id string) (subsonic.AlbumWithSongs, error)
	GetAlbumList2(ctx context.Context, listType subsonic.AlbumListType, opts subsonic.AlbumListOptions) ([]subsonic.AlbumID3, error)
}

// Options configures the UI.
type Options struct {
	Context       context.Context
	Library       Library
	Store         *state.Store
	PollTick      time.Duration
	ThemeName     string
	AlbumListType string
	PrefsPath     string
	Logger        *slog.Logger
}

// listCursor is the selection and filter of one list view.
type listCursor struct {
	selected int
	filter   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	library   Library
	store     *state.Store
	logger    *slog.Logger
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	listType subsonic.AlbumListType
	view     View
	width    int
	height   int
	ready    bool
	showHelp bool
	loading  bool

	// Poller data
	snapshot state.Snapshot
	errorMsg string

	// Artists
	artists       []subsonic.ArtistID3
	artistsLoaded bool
	artistCursor  listCursor

	// Albums, either one artist's or a server album list
	albums          []subsonic.AlbumID3
	albumsTitle     string
	albumsForArtist bool
	albumsArtistID  string
	albumCursor     listCursor

	// Tracks of the open album
	album         subsonic.AlbumWithSongs
	hasAlbum      bool
	tracksFrom    View
	trackViewport viewport.Model

	nowPlayingCursor int

	filterInput textinput.Model
	filtering   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	listType, err := subsonic.ParseAlbumListType(opts.AlbumListType)
	if err != nil || !browsable(listType) {
		listType = subsonic.AlbumListNewest
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.CharLimit = 100

	return Model{
		ctx:         ctx,
		library:     opts.Library,
		store:       opts.Store,
		logger:      logger,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        defaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		listType:    listType,
		view:        ViewArtists,
		loading:     opts.Library != nil,
		filterInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if cmd := m.loadArtistsCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTrackViewport()
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.nowPlayingCursor = clampCursor(m.nowPlayingCursor, len(m.snapshot.NowPlaying))
		return m, nil

	case artistsMsg:
		m.loading = false
		if msg.err != nil {
			m.setError("load artists", msg.err)
			return m, nil
		}
		m.errorMsg = ""
		m.artists = msg.artists
		m.artistsLoaded = true
		m.artistCursor.selected = clampCursor(m.artistCursor.selected, len(m.visibleArtists()))
		return m, nil

	case albumsMsg:
		m.loading = false
		if msg.err != nil {
			m.setError("load albums", msg.err)
			return m, nil
		}
		m.errorMsg = ""
		m.albums = msg.albums
		m.albumsTitle = msg.title
		m.albumsForArtist = msg.forArtist
		m.albumsArtistID = msg.artistID
		m.albumCursor = listCursor{}
		m.view = ViewAlbums
		return m, nil

	case albumMsg:
		m.loading = false
		if msg.err != nil {
			m.setError("load album", msg.err)
			return m, nil
		}
		m.errorMsg = ""
		m.album = msg.album
		m.hasAlbum = true
		if m.view != ViewTracks {
			m.tracksFrom = m.view
		}
		m.view = ViewTracks
		m.refreshTrackViewport()
		m.trackViewport.GotoTop()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewAlbums:
		return m.renderAlbums()
	case ViewTracks:
		return m.renderTracks()
	case ViewNowPlaying:
		return m.renderNowPlaying()
	default:
		return m.renderArtists()
	}
}

// handleKey routes keyboard input: overlays first, then global keys, then
// the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.filtering {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshTrackViewport()
		return m, nil

	case key.Matches(msg, m.keys.CycleListType):
		m.listType = nextListType(m.listType)
		m.savePrefs()
		var cmd tea.Cmd
		if m.view == ViewAlbums && !m.albumsForArtist {
			cmd = m.loadAlbumListCmd()
		}
		return m, cmd

	case key.Matches(msg, m.keys.ViewArtists):
		m.view = ViewArtists
		var cmd tea.Cmd
		if !m.artistsLoaded && !m.loading {
			cmd = m.loadArtistsCmd()
		}
		return m, cmd

	case key.Matches(msg, m.keys.ViewAlbumList):
		cmd := m.loadAlbumListCmd()
		return m, cmd

	case key.Matches(msg, m.keys.ViewNowPlaying):
		m.view = ViewNowPlaying
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.view = m.stepView(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.view = m.stepView(-1)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		cmd := m.reloadCmd()
		return m, cmd
	}

	switch m.view {
	case ViewArtists:
		return m.handleArtistsKey(msg)
	case ViewAlbums:
		return m.handleAlbumsKey(msg)
	case ViewTracks:
		return m.handleTracksKey(msg)
	case ViewNowPlaying:
		return m.handleNowPlayingKey(msg)
	}
	return m, nil
}

// stepView cycles through the views that have something to show.
func (m Model) stepView(delta int) View {
	views := []View{ViewArtists}
	if len(m.albums) > 0 {
		views = append(views, ViewAlbums)
	}
	if m.hasAlbum {
		views = append(views, ViewTracks)
	}
	views = append(views, ViewNowPlaying)

	idx := 0
	for i, v := range views {
		if v == m.view {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(views)) % len(views)
	return views[idx]
}

func (m *Model) setError(op string, err error) {
	m.errorMsg = fmt.Sprintf("%s: %s", op, describeError(err))
	m.logger.Warn(op+" failed", "error", err)
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, AlbumListType: string(m.listType)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.errorMsg = "save preferences failed"
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// describeError turns client failures into the short text shown in the header.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *subsonic.APIError
	if errors.As(err, &apiErr) {
		label := apiErr.Code.String()
		if apiErr.Message == "" || strings.EqualFold(apiErr.Message, label) {
			return label
		}
		return label + " (" + apiErr.Message + ")"
	}
	var statusErr *subsonic.HTTPStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d from %s", statusErr.StatusCode, statusErr.Endpoint)
	}
	var parseErr *subsonic.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Endpoint != "" {
			return "unexpected response from " + parseErr.Endpoint
		}
		return "unexpected response"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection refused"
	case strings.Contains(msg, "no such host"):
		return "host not found"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	default:
		return msg
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Context == nil {
		opts.Context = ctx
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
