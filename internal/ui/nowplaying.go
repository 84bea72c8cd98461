package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleNowPlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.snapshot.NowPlaying
	if key.Matches(msg, m.keys.Open) {
		if len(entries) == 0 {
			return m, nil
		}
		if id := entries[m.nowPlayingCursor].AlbumID; id != "" {
			cmd := m.loadAlbumCmd(id)
			return m, cmd
		}
		return m, nil
	}
	m.nowPlayingCursor = m.moveCursor(msg, m.nowPlayingCursor, len(entries))
	return m, nil
}

func (m Model) renderNowPlaying() string {
	entries := m.snapshot.NowPlaying
	titleWidth := max(m.width/3, 10)
	artistWidth := max(m.width/4, 8)

	lines := make([]string, len(entries))
	for i, e := range entries {
		who := e.Username
		if e.PlayerName != "" {
			who += "@" + e.PlayerName
		}
		ago := "now"
		if e.MinutesAgo > 0 {
			ago = fmt.Sprintf("%dm ago", e.MinutesAgo)
		}
		lines[i] = fmt.Sprintf(" %s  %s  %s  %s", cell(e.Title, titleWidth), cell(e.Artist, artistWidth), cell(who, 20), ago)
	}

	empty := "Nothing is playing."
	if !m.snapshot.HasServer {
		empty = "Waiting for the server..."
	}
	return m.renderList(fmt.Sprintf("Now Playing (%d)", len(entries)), lines, m.nowPlayingCursor, empty)
}
