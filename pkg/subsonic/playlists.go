package subsonic

import (
	"context"
	"errors"
	"strconv"
)

// GetPlaylists lists playlists visible to the user, or to username when the
// caller is an admin.
func (c *Client) GetPlaylists(ctx context.Context, username string) ([]Playlist, error) {
	var p params
	p.str("username", username)
	return fetchList[Playlist](ctx, c, "getPlaylists", p, "playlists", "playlist")
}

// GetPlaylist returns a playlist with its entries.
func (c *Client) GetPlaylist(ctx context.Context, id string) (PlaylistWithSongs, error) {
	return fetch[PlaylistWithSongs](ctx, c, "getPlaylist", []Param{P("id", id)}, "playlist")
}

// CreatePlaylist creates a playlist named name, or replaces the songs of
// playlistID when it is set. Exactly one of the two is required.
func (c *Client) CreatePlaylist(ctx context.Context, playlistID, name string, songIDs []string) (PlaylistWithSongs, error) {
	if playlistID == "" && name == "" {
		return PlaylistWithSongs{}, errors.New("create playlist: name or playlist id required")
	}
	var p params
	p.str("playlistId", playlistID)
	p.str("name", name)
	p.each("songId", songIDs)
	return fetch[PlaylistWithSongs](ctx, c, "createPlaylist", p, "playlist")
}

// PlaylistUpdate describes an updatePlaylist call. Removal indexes refer to
// positions before any additions.
type PlaylistUpdate struct {
	Name                string
	Comment             string
	Public              *bool
	SongIDsToAdd        []string
	SongIndexesToRemove []int
}

func (u PlaylistUpdate) params(playlistID string) params {
	p := params{P("playlistId", playlistID)}
	p.str("name", u.Name)
	p.str("comment", u.Comment)
	p.boolPtr("public", u.Public)
	p.each("songIdToAdd", u.SongIDsToAdd)
	for _, idx := range u.SongIndexesToRemove {
		p.add("songIndexToRemove", strconv.Itoa(idx))
	}
	return p
}

// UpdatePlaylist edits metadata and entries of an existing playlist.
func (c *Client) UpdatePlaylist(ctx context.Context, playlistID string, update PlaylistUpdate) error {
	return c.exec(ctx, "updatePlaylist", update.params(playlistID))
}

// DeletePlaylist removes a playlist.
func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	return c.exec(ctx, "deletePlaylist", []Param{P("id", id)})
}
