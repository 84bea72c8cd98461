package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sonar/pkg/subsonic"
)

type artistsMsg struct {
	artists []subsonic.ArtistID3
	err     error
}

type albumsMsg struct {
	title     string
	forArtist bool
	artistID  string
	albums    []subsonic.AlbumID3
	err       error
}

type albumMsg struct {
	album subsonic.AlbumWithSongs
	err   error
}

// fetch marks the model busy and runs fn off the UI goroutine with a bounded
// context. It returns nil when no library is attached.
func (m *Model) fetch(fn func(ctx context.Context, lib Library) tea.Msg) tea.Cmd {
	if m.library == nil {
		return nil
	}
	m.loading = true
	parent, lib := m.ctx, m.library
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, browseTimeout)
		defer cancel()
		return fn(ctx, lib)
	}
}

func (m *Model) loadArtistsCmd() tea.Cmd {
	return m.fetch(func(ctx context.Context, lib Library) tea.Msg {
		idx, err := lib.GetArtists(ctx, "")
		return artistsMsg{artists: idx.All(), err: err}
	})
}

func (m *Model) loadArtistCmd(id, name string) tea.Cmd {
	return m.fetch(func(ctx context.Context, lib Library) tea.Msg {
		artist, err := lib.GetArtist(ctx, id)
		if name == "" {
			name = artist.Name
		}
		return albumsMsg{title: "Albums by " + name, forArtist: true, artistID: id, albums: artist.Albums, err: err}
	})
}

func (m *Model) loadAlbumListCmd() tea.Cmd {
	listType := m.listType
	return m.fetch(func(ctx context.Context, lib Library) tea.Msg {
		albums, err := lib.GetAlbumList2(ctx, listType, subsonic.AlbumListOptions{Size: albumListSize})
		return albumsMsg{title: "Albums: " + listTypeLabel(listType), albums: albums, err: err}
	})
}

func (m *Model) loadAlbumCmd(id string) tea.Cmd {
	return m.fetch(func(ctx context.Context, lib Library) tea.Msg {
		album, err := lib.GetAlbum(ctx, id)
		return albumMsg{album: album, err: err}
	})
}

// reloadCmd refetches whatever the active view shows.
func (m *Model) reloadCmd() tea.Cmd {
	switch m.view {
	case ViewAlbums:
		if m.albumsForArtist {
			return m.loadArtistCmd(m.albumsArtistID, "")
		}
		return m.loadAlbumListCmd()
	case ViewTracks:
		if m.hasAlbum {
			return m.loadAlbumCmd(m.album.ID)
		}
	case ViewNowPlaying:
		if m.store != nil {
			return fetchSnapshotCmd(m.store)
		}
	default:
		return m.loadArtistsCmd()
	}
	return nil
}
