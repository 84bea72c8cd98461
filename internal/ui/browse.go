package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/sonar/pkg/subsonic"
)

// browsable reports whether a list type works without extra arguments.
// byYear and byGenre need a range or genre the browser does not ask for.
func browsable(t subsonic.AlbumListType) bool {
	return t != subsonic.AlbumListByYear && t != subsonic.AlbumListByGenre
}

func nextListType(current subsonic.AlbumListType) subsonic.AlbumListType {
	var cycle []subsonic.AlbumListType
	for _, t := range subsonic.AlbumListTypes {
		if browsable(t) {
			cycle = append(cycle, t)
		}
	}
	for i, t := range cycle {
		if t == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// listTypeLabel turns "alphabeticalByName" into "Alphabetical By Name".
func listTypeLabel(t subsonic.AlbumListType) string {
	var b strings.Builder
	for i, r := range string(t) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English).String(b.String())
}

func (m Model) visibleArtists() []subsonic.ArtistID3 {
	match := newMatcher(m.artistCursor.filter)
	out := make([]subsonic.ArtistID3, 0, len(m.artists))
	for _, a := range m.artists {
		if match.Match(a.Name, a.SortName) {
			out = append(out, a)
		}
	}
	return out
}

func (m Model) visibleAlbums() []subsonic.AlbumID3 {
	match := newMatcher(m.albumCursor.filter)
	out := make([]subsonic.AlbumID3, 0, len(m.albums))
	for _, a := range m.albums {
		if match.Match(a.Name, a.Artist, a.DisplayArtist) {
			out = append(out, a)
		}
	}
	return out
}

// activeCursor returns the list cursor the filter applies to, or nil.
func (m *Model) activeCursor() *listCursor {
	switch m.view {
	case ViewArtists:
		return &m.artistCursor
	case ViewAlbums:
		return &m.albumCursor
	default:
		return nil
	}
}

func (m *Model) setFilter(value string) {
	if c := m.activeCursor(); c != nil {
		c.filter = value
		c.selected = 0
	}
}

func (m Model) startFilter() (tea.Model, tea.Cmd) {
	c := m.activeCursor()
	if c == nil {
		return m, nil
	}
	m.filtering = true
	m.filterInput.SetValue(c.filter)
	m.filterInput.CursorEnd()
	cmd := m.filterInput.Focus()
	return m, cmd
}

// handleFilterInput applies the filter as the user types. Enter keeps it,
// esc clears it.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilter):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.setFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return m, cmd
}

func (m Model) handleArtistsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleArtists()
	switch {
	case key.Matches(msg, m.keys.Filter):
		return m.startFilter()

	case key.Matches(msg, m.keys.Back):
		if m.artistCursor.filter != "" {
			m.artistCursor = listCursor{}
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(rows) == 0 {
			return m, nil
		}
		a := rows[m.artistCursor.selected]
		cmd := m.loadArtistCmd(a.ID, a.Name)
		return m, cmd
	}
	m.artistCursor.selected = m.moveCursor(msg, m.artistCursor.selected, len(rows))
	return m, nil
}

func (m Model) handleAlbumsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleAlbums()
	switch {
	case key.Matches(msg, m.keys.Filter):
		return m.startFilter()

	case key.Matches(msg, m.keys.Back):
		if m.albumCursor.filter != "" {
			m.albumCursor = listCursor{}
			return m, nil
		}
		m.view = ViewArtists
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(rows) == 0 {
			return m, nil
		}
		cmd := m.loadAlbumCmd(rows[m.albumCursor.selected].ID)
		return m, cmd
	}
	m.albumCursor.selected = m.moveCursor(msg, m.albumCursor.selected, len(rows))
	return m, nil
}

// moveCursor applies navigation keys to a list selection.
func (m Model) moveCursor(msg tea.KeyMsg, selected, count int) int {
	if count == 0 {
		return 0
	}
	half := max(m.listHeight()/2, 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		selected++
	case key.Matches(msg, m.keys.Up):
		selected--
	case key.Matches(msg, m.keys.Top):
		selected = 0
	case key.Matches(msg, m.keys.Bottom):
		selected = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		selected += half
	case key.Matches(msg, m.keys.HalfPageUp):
		selected -= half
	}
	return clampCursor(selected, count)
}

func clampCursor(selected, count int) int {
	if count <= 0 || selected < 0 {
		return 0
	}
	if selected >= count {
		return count - 1
	}
	return selected
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 1)
}

// listHeight is the number of rows left after the title and filter lines.
func (m Model) listHeight() int {
	h := m.contentHeight() - 1
	if m.filterLine() != "" {
		h--
	}
	return max(h, 1)
}

func (m Model) filterLine() string {
	c := m.activeCursor()
	if c == nil {
		return ""
	}
	if m.filtering {
		return m.filterInput.View()
	}
	if c.filter != "" {
		return m.theme.Styles().FaintText.Render("filter: " + c.filter + "  (/ edit, esc clear)")
	}
	return ""
}

// renderList draws a titled list, scrolled so selected stays visible.
func (m Model) renderList(title string, rows []string, selected int, empty string) string {
	styles := m.theme.Styles()
	height := m.listHeight()

	lines := []string{styles.AccentText.Bold(true).Render(title)}
	if len(rows) == 0 {
		lines = append(lines, styles.MutedText.Render(empty))
	} else {
		start := windowStart(selected, height)
		end := min(start+height, len(rows))
		for i := start; i < end; i++ {
			if i == selected {
				lines = append(lines, styles.Selected.Width(m.width).Render(rows[i]))
			} else {
				lines = append(lines, styles.Text.Render(rows[i]))
			}
		}
	}

	if filter := m.filterLine(); filter != "" {
		for len(lines) < m.contentHeight()-1 {
			lines = append(lines, "")
		}
		lines = append(lines, filter)
	}
	return strings.Join(lines, "\n")
}

func windowStart(selected, height int) int {
	if height <= 0 || selected < height {
		return 0
	}
	return selected - height + 1
}

func (m Model) renderArtists() string {
	rows := m.visibleArtists()
	nameWidth := max(m.width-16, 10)
	lines := make([]string, len(rows))
	for i, a := range rows {
		star := " "
		if a.Starred != "" {
			star = "*"
		}
		lines[i] = fmt.Sprintf("%s %s %5d albums", star, cell(a.Name, nameWidth), a.AlbumCount)
	}

	empty := "No artists."
	switch {
	case m.loading && !m.artistsLoaded:
		empty = "Loading artists..."
	case m.artistCursor.filter != "":
		empty = "No artists match the filter."
	}
	title := fmt.Sprintf("Artists (%d)", len(rows))
	return m.renderList(title, lines, m.artistCursor.selected, empty)
}

func (m Model) renderAlbums() string {
	rows := m.visibleAlbums()
	compact := m.width < layoutCompactWidth || m.albumsForArtist
	nameWidth := max(m.width-26, 10)
	artistWidth := 0
	if !compact {
		artistWidth = m.width * 3 / 10
		nameWidth = max(m.width-artistWidth-28, 10)
	}

	lines := make([]string, len(rows))
	for i, a := range rows {
		var b strings.Builder
		b.WriteString(" ")
		b.WriteString(cell(a.Name, nameWidth))
		if artistWidth > 0 {
			b.WriteString("  ")
			artist := a.DisplayArtist
			if artist == "" {
				artist = a.Artist
			}
			b.WriteString(cell(artist, artistWidth))
		}
		year := "    "
		if a.Year > 0 {
			year = fmt.Sprintf("%4d", a.Year)
		}
		fmt.Fprintf(&b, "  %s  %3d  %8s", year, a.SongCount, formatDuration(a.Duration))
		lines[i] = b.String()
	}

	empty := "No albums."
	if m.albumCursor.filter != "" {
		empty = "No albums match the filter."
	}
	title := fmt.Sprintf("%s (%d)", m.albumsTitle, len(rows))
	return m.renderList(title, lines, m.albumCursor.selected, empty)
}
