package subsonic

import (
	"context"
	"fmt"
	"strings"
)

// AlbumListType orders getAlbumList and getAlbumList2 results.
type AlbumListType string

// Album list orderings. byYear needs FromYear and ToYear; byGenre needs Genre.
const (
	AlbumListRandom               AlbumListType = "random"
	AlbumListNewest               AlbumListType = "newest"
	AlbumListHighest              AlbumListType = "highest"
	AlbumListFrequent             AlbumListType = "frequent"
	AlbumListRecent               AlbumListType = "recent"
	AlbumListAlphabeticalByName   AlbumListType = "alphabeticalByName"
	AlbumListAlphabeticalByArtist AlbumListType = "alphabeticalByArtist"
	AlbumListStarred              AlbumListType = "starred"
	AlbumListByYear               AlbumListType = "byYear"
	AlbumListByGenre              AlbumListType = "byGenre"
)

// AlbumListTypes lists every ordering in display order.
var AlbumListTypes = []AlbumListType{
	AlbumListNewest,
	AlbumListRecent,
	AlbumListFrequent,
	AlbumListHighest,
	AlbumListRandom,
	AlbumListAlphabeticalByName,
	AlbumListAlphabeticalByArtist,
	AlbumListStarred,
	AlbumListByYear,
	AlbumListByGenre,
}

// ParseAlbumListType matches a list type case-insensitively.
func ParseAlbumListType(value string) (AlbumListType, error) {
	trimmed := strings.TrimSpace(value)
	for _, t := range AlbumListTypes {
		if strings.EqualFold(string(t), trimmed) {
			return t, nil
		}
	}
	return "", fmt.Errorf("album list type: unsupported value %q", value)
}

// AlbumListOptions are the optional getAlbumList2 arguments. FromYear and
// ToYear are required by byYear; Genre by byGenre.
type AlbumListOptions struct {
	Size          int
	Offset        int
	FromYear      *int
	ToYear        *int
	Genre         string
	MusicFolderID string
}

func (o AlbumListOptions) params(listType AlbumListType) params {
	p := params{P("type", string(listType))}
	p.positive("size", o.Size)
	p.positive("offset", o.Offset)
	p.intPtr("fromYear", o.FromYear)
	p.intPtr("toYear", o.ToYear)
	p.str("genre", o.Genre)
	p.str("musicFolderId", o.MusicFolderID)
	return p
}

// GetAlbumList is the folder-based GetAlbumList2; albums come back as
// directory entries.
func (c *Client) GetAlbumList(ctx context.Context, listType AlbumListType, opts AlbumListOptions) ([]Child, error) {
	return fetchList[Child](ctx, c, "getAlbumList", opts.params(listType), "albumList", "album")
}

// GetAlbumList2 lists tag-based albums in the given order.
func (c *Client) GetAlbumList2(ctx context.Context, listType AlbumListType, opts AlbumListOptions) ([]AlbumID3, error) {
	return fetchList[AlbumID3](ctx, c, "getAlbumList2", opts.params(listType), "albumList2", "album")
}

// RandomSongsOptions are the optional getRandomSongs arguments.
type RandomSongsOptions struct {
	Size          int
	Genre         string
	FromYear      *int
	ToYear        *int
	MusicFolderID string
}

// GetRandomSongs returns random songs matching opts.
func (c *Client) GetRandomSongs(ctx context.Context, opts RandomSongsOptions) ([]Child, error) {
	var p params
	p.positive("size", opts.Size)
	p.str("genre", opts.Genre)
	p.intPtr("fromYear", opts.FromYear)
	p.intPtr("toYear", opts.ToYear)
	p.str("musicFolderId", opts.MusicFolderID)
	return fetchList[Child](ctx, c, "getRandomSongs", p, "randomSongs", "song")
}

// GetSongsByGenre pages through the songs of one genre.
func (c *Client) GetSongsByGenre(ctx context.Context, genre string, count, offset int, musicFolderID string) ([]Child, error) {
	p := params{P("genre", genre)}
	p.positive("count", count)
	p.positive("offset", offset)
	p.str("musicFolderId", musicFolderID)
	return fetchList[Child](ctx, c, "getSongsByGenre", p, "songsByGenre", "song")
}

// GetNowPlaying lists what every user is currently playing.
func (c *Client) GetNowPlaying(ctx context.Context) ([]NowPlayingEntry, error) {
	return fetchList[NowPlayingEntry](ctx, c, "getNowPlaying", nil, "nowPlaying", "entry")
}

// GetStarred returns folder-based starred items. Nothing starred yields
// empty lists.
func (c *Client) GetStarred(ctx context.Context, musicFolderID string) (Starred, error) {
	var p params
	p.str("musicFolderId", musicFolderID)
	out, err := fetchOptional[Starred](ctx, c, "getStarred", p, "starred")
	if err != nil {
		return Starred{}, err
	}
	return out.normalized(), nil
}

// GetStarred2 returns tag-based starred items. Nothing starred yields
// empty lists.
func (c *Client) GetStarred2(ctx context.Context, musicFolderID string) (Starred2, error) {
	var p params
	p.str("musicFolderId", musicFolderID)
	out, err := fetchOptional[Starred2](ctx, c, "getStarred2", p, "starred2")
	if err != nil {
		return Starred2{}, err
	}
	return out.normalized(), nil
}

func (s Starred) normalized() Starred {
	if s.Artists == nil {
		s.Artists = []Artist{}
	}
	if s.Albums == nil {
		s.Albums = []Child{}
	}
	if s.Songs == nil {
		s.Songs = []Child{}
	}
	return s
}

func (s Starred2) normalized() Starred2 {
	if s.Artists == nil {
		s.Artists = []ArtistID3{}
	}
	if s.Albums == nil {
		s.Albums = []AlbumID3{}
	}
	if s.Songs == nil {
		s.Songs = []Child{}
	}
	return s
}
