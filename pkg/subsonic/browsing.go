package subsonic

import (
	"context"
	"strconv"
)

// GetMusicFolders lists the top-level library folders.
func (c *Client) GetMusicFolders(ctx context.Context) ([]MusicFolder, error) {
	return fetchList[MusicFolder](ctx, c, "getMusicFolders", nil, "musicFolders", "musicFolder")
}

// GetIndexes returns the folder-based artist index. ifModifiedSince is a
// millisecond timestamp; zero omits it.
func (c *Client) GetIndexes(ctx context.Context, musicFolderID string, ifModifiedSince int64) (Indexes, error) {
	var p params
	p.str("musicFolderId", musicFolderID)
	if ifModifiedSince > 0 {
		p.add("ifModifiedSince", strconv.FormatInt(ifModifiedSince, 10))
	}
	return fetch[Indexes](ctx, c, "getIndexes", p, "indexes")
}

// GetMusicDirectory lists one folder-based directory.
func (c *Client) GetMusicDirectory(ctx context.Context, id string) (Directory, error) {
	return fetch[Directory](ctx, c, "getMusicDirectory", []Param{P("id", id)}, "directory")
}

// GetGenres lists every genre with its song and album counts.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	return fetchList[Genre](ctx, c, "getGenres", nil, "genres", "genre")
}

// GetArtists returns the tag-based artist index, optionally limited to one folder.
func (c *Client) GetArtists(ctx context.Context, musicFolderID string) (Artists, error) {
	var p params
	p.str("musicFolderId", musicFolderID)
	return fetch[Artists](ctx, c, "getArtists", p, "artists")
}

// GetArtist returns a tag-based artist with its albums.
func (c *Client) GetArtist(ctx context.Context, id string) (ArtistWithAlbums, error) {
	return fetch[ArtistWithAlbums](ctx, c, "getArtist", []Param{P("id", id)}, "artist")
}

// GetAlbum returns a tag-based album with its songs.
func (c *Client) GetAlbum(ctx context.Context, id string) (AlbumWithSongs, error) {
	return fetch[AlbumWithSongs](ctx, c, "getAlbum", []Param{P("id", id)}, "album")
}

// GetSong returns one song.
func (c *Client) GetSong(ctx context.Context, id string) (Child, error) {
	return fetch[Child](ctx, c, "getSong", []Param{P("id", id)}, "song")
}

// GetVideos lists every video in the library.
func (c *Client) GetVideos(ctx context.Context) ([]Child, error) {
	return fetchList[Child](ctx, c, "getVideos", nil, "videos", "video")
}

func artistInfoParams(id string, count int, includeNotPresent bool) params {
	p := params{P("id", id)}
	p.positive("count", count)
	if includeNotPresent {
		p.add("includeNotPresent", "true")
	}
	return p
}

// GetArtistInfo is the folder-based GetArtistInfo2; id may be any artist,
// album or song directory.
func (c *Client) GetArtistInfo(ctx context.Context, id string, count int, includeNotPresent bool) (ArtistInfo, error) {
	return fetch[ArtistInfo](ctx, c, "getArtistInfo", artistInfoParams(id, count, includeNotPresent), "artistInfo")
}

// GetArtistInfo2 returns biography and similar artists. count <= 0 uses
// the server default.
func (c *Client) GetArtistInfo2(ctx context.Context, id string, count int, includeNotPresent bool) (ArtistInfo2, error) {
	return fetch[ArtistInfo2](ctx, c, "getArtistInfo2", artistInfoParams(id, count, includeNotPresent), "artistInfo2")
}

// GetAlbumInfo returns notes and images for a folder-based album.
func (c *Client) GetAlbumInfo(ctx context.Context, id string) (AlbumInfo, error) {
	return fetch[AlbumInfo](ctx, c, "getAlbumInfo", []Param{P("id", id)}, "albumInfo")
}

// GetAlbumInfo2 returns notes and images for a tag-based album. The
// response field is albumInfo, same as the folder-based call.
func (c *Client) GetAlbumInfo2(ctx context.Context, id string) (AlbumInfo, error) {
	return fetch[AlbumInfo](ctx, c, "getAlbumInfo2", []Param{P("id", id)}, "albumInfo")
}

// GetTopSongs returns the most popular songs for an artist name.
func (c *Client) GetTopSongs(ctx context.Context, artist string, count int) ([]Child, error) {
	p := params{P("artist", artist)}
	p.positive("count", count)
	return fetchList[Child](ctx, c, "getTopSongs", p, "topSongs", "song")
}

// GetSimilarSongs returns songs similar to a folder-based artist, album or song.
func (c *Client) GetSimilarSongs(ctx context.Context, id string, count int) ([]Child, error) {
	p := params{P("id", id)}
	p.positive("count", count)
	return fetchList[Child](ctx, c, "getSimilarSongs", p, "similarSongs", "song")
}

// GetSimilarSongs2 returns songs similar to a tag-based artist.
func (c *Client) GetSimilarSongs2(ctx context.Context, id string, count int) ([]Child, error) {
	p := params{P("id", id)}
	p.positive("count", count)
	return fetchList[Child](ctx, c, "getSimilarSongs2", p, "similarSongs2", "song")
}
