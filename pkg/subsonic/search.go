package subsonic

import (
	"context"
	"errors"
	"strconv"
)

// SearchOptions bound the three result groups of search2 and search3. Nil
// counts use server defaults; a pointer to zero suppresses that group.
type SearchOptions struct {
	ArtistCount   *int
	ArtistOffset  int
	AlbumCount    *int
	AlbumOffset   int
	SongCount     *int
	SongOffset    int
	MusicFolderID string
}

func (o SearchOptions) params(query string) params {
	p := params{P("query", query)}
	p.intPtr("artistCount", o.ArtistCount)
	p.positive("artistOffset", o.ArtistOffset)
	p.intPtr("albumCount", o.AlbumCount)
	p.positive("albumOffset", o.AlbumOffset)
	p.intPtr("songCount", o.SongCount)
	p.positive("songOffset", o.SongOffset)
	p.str("musicFolderId", o.MusicFolderID)
	return p
}

// Search3 searches artists, albums, and songs by tag. An empty query is
// sent as "" which most servers treat as match-all.
func (c *Client) Search3(ctx context.Context, query string, opts SearchOptions) (SearchResult3, error) {
	out, err := fetchOptional[SearchResult3](ctx, c, "search3", opts.params(query), "searchResult3")
	if err != nil {
		return SearchResult3{}, err
	}
	if out.Artists == nil {
		out.Artists = []ArtistID3{}
	}
	if out.Albums == nil {
		out.Albums = []AlbumID3{}
	}
	if out.Songs == nil {
		out.Songs = []Child{}
	}
	return out, nil
}

// Search2 is the folder-based Search3.
func (c *Client) Search2(ctx context.Context, query string, opts SearchOptions) (SearchResult2, error) {
	out, err := fetchOptional[SearchResult2](ctx, c, "search2", opts.params(query), "searchResult2")
	if err != nil {
		return SearchResult2{}, err
	}
	if out.Artists == nil {
		out.Artists = []Artist{}
	}
	if out.Albums == nil {
		out.Albums = []Child{}
	}
	if out.Songs == nil {
		out.Songs = []Child{}
	}
	return out, nil
}

// LegacySearch holds the field filters of the original search call. At
// least one of Artist, Album, Title or Any must be set. NewerThan is a
// millisecond timestamp; zero omits it.
type LegacySearch struct {
	Artist    string
	Album     string
	Title     string
	Any       string
	Count     int
	Offset    int
	NewerThan int64
}

func (s LegacySearch) params() params {
	var p params
	p.str("artist", s.Artist)
	p.str("album", s.Album)
	p.str("title", s.Title)
	p.str("any", s.Any)
	p.positive("count", s.Count)
	p.positive("offset", s.Offset)
	if s.NewerThan > 0 {
		p.add("newerThan", strconv.FormatInt(s.NewerThan, 10))
	}
	return p
}

// Search runs the deprecated field search.
func (c *Client) Search(ctx context.Context, criteria LegacySearch) (SearchResult, error) {
	if criteria.Artist == "" && criteria.Album == "" && criteria.Title == "" && criteria.Any == "" {
		return SearchResult{}, errors.New("search: no criteria")
	}
	out, err := fetchOptional[SearchResult](ctx, c, "search", criteria.params(), "searchResult")
	if err != nil {
		return SearchResult{}, err
	}
	if out.Matches == nil {
		out.Matches = []Child{}
	}
	return out, nil
}
