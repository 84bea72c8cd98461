package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) resizeTrackViewport() {
	width, height := max(m.width, 1), m.contentHeight()
	if m.trackViewport.Width == 0 {
		m.trackViewport = viewport.New(width, height)
		m.trackViewport.Style = lipgloss.NewStyle()
	} else {
		m.trackViewport.Width = width
		m.trackViewport.Height = height
	}
	m.refreshTrackViewport()
}

func (m *Model) refreshTrackViewport() {
	if !m.hasAlbum || m.trackViewport.Width == 0 {
		return
	}
	m.trackViewport.SetContent(m.trackContent())
}

// trackContent renders the album heading and its track table.
func (m Model) trackContent() string {
	styles := m.theme.Styles()
	album := m.album

	artist := album.DisplayArtist
	if artist == "" {
		artist = album.Artist
	}
	facts := []string{artist}
	if album.Year > 0 {
		facts = append(facts, fmt.Sprintf("%d", album.Year))
	}
	if album.Genre != "" {
		facts = append(facts, album.Genre)
	}
	facts = append(facts, fmt.Sprintf("%d tracks", len(album.Songs)), formatDuration(album.Duration))

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(album.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Join(facts, " · ")))
	b.WriteString("\n\n")

	multiDisc := false
	for _, s := range album.Songs {
		if s.DiscNumber > 1 {
			multiDisc = true
			break
		}
	}

	titleWidth := max(m.width-24, 10)
	artistWidth := 0
	if m.width >= layoutCompactWidth {
		artistWidth = m.width / 4
		titleWidth = max(m.width-artistWidth-26, 10)
	}

	for _, s := range album.Songs {
		pos := fmt.Sprintf("%2d", s.Track)
		if multiDisc {
			pos = fmt.Sprintf("%d-%02d", max(s.DiscNumber, 1), s.Track)
		}
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%5s  ", pos)))
		b.WriteString(styles.Text.Render(cell(s.Title, titleWidth)))
		if artistWidth > 0 {
			b.WriteString("  ")
			b.WriteString(styles.MutedText.Render(cell(s.Artist, artistWidth)))
		}
		b.WriteString("  ")
		b.WriteString(styles.InfoText.Render(fmt.Sprintf("%8s", formatDuration(s.Duration))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTracks() string {
	if !m.hasAlbum {
		return m.theme.Styles().MutedText.Render("No album open.")
	}
	return m.trackViewport.View()
}

func (m Model) handleTracksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = m.tracksFrom
	case key.Matches(msg, m.keys.Top):
		m.trackViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.trackViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.trackViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.trackViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.trackViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.trackViewport.HalfPageUp()
	}
	return m, nil
}
