package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// StreamOptions are the optional stream arguments.
type StreamOptions struct {
	MaxBitRate            int
	Format                string
	TimeOffset            int
	EstimateContentLength bool
}

func (o StreamOptions) params(id string) params {
	p := params{P("id", id)}
	p.positive("maxBitRate", o.MaxBitRate)
	p.str("format", o.Format)
	p.positive("timeOffset", o.TimeOffset)
	if o.EstimateContentLength {
		p.add("estimateContentLength", "true")
	}
	return p
}

// Stream fetches a media file, transcoded per opts. The whole body is read
// into memory.
func (c *Client) Stream(ctx context.Context, id string, opts StreamOptions) ([]byte, error) {
	return c.getBytes(ctx, "stream", opts.params(id))
}

// StreamURL returns a signed stream link without contacting the server.
func (c *Client) StreamURL(id string, opts StreamOptions) *url.URL {
	return c.URL("stream", opts.params(id)...)
}

// Download fetches the original, untranscoded file.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	return c.getBytes(ctx, "download", []Param{P("id", id)})
}

// HLSURL returns a signed HLS playlist link. bitRate <= 0 and an empty
// audioTrack are omitted.
func (c *Client) HLSURL(id string, bitRate int, audioTrack string) *url.URL {
	p := params{P("id", id)}
	p.positive("bitRate", bitRate)
	p.str("audioTrack", audioTrack)
	return c.URL("hls.m3u8", p...)
}

// GetCaptions fetches captions for a video; format is "srt" or "vtt".
func (c *Client) GetCaptions(ctx context.Context, id, format string) ([]byte, error) {
	p := params{P("id", id)}
	p.str("format", format)
	return c.getBytes(ctx, "getCaptions", p)
}

// GetCoverArt fetches cover art, scaled to size pixels when size > 0.
func (c *Client) GetCoverArt(ctx context.Context, id string, size int) ([]byte, error) {
	return c.getBytes(ctx, "getCoverArt", coverArtParams(id, size))
}

// CoverArtURL returns a signed cover-art link without contacting the server.
func (c *Client) CoverArtURL(id string, size int) *url.URL {
	return c.URL("getCoverArt", coverArtParams(id, size)...)
}

func coverArtParams(id string, size int) params {
	p := params{P("id", id)}
	if size > 0 {
		p.add("size", strconv.Itoa(size))
	}
	return p
}

// GetAvatar fetches a user's avatar image.
func (c *Client) GetAvatar(ctx context.Context, username string) ([]byte, error) {
	return c.getBytes(ctx, "getAvatar", []Param{P("username", username)})
}

// Lyrics is the legacy unstructured lyrics record.
type Lyrics struct {
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	Value  string `json:"value,omitempty"`
}

// LyricLine is one line; Start is milliseconds for synced lyrics.
type LyricLine struct {
	Value string   `json:"value"`
	Start *float64 `json:"start,omitempty"`
}

// StructuredLyrics is one language or timing variant of a song's lyrics.
type StructuredLyrics struct {
	Lang          string      `json:"lang"`
	Synced        bool        `json:"synced"`
	Lines         []LyricLine `json:"line"`
	DisplayArtist string      `json:"displayArtist,omitempty"`
	DisplayTitle  string      `json:"displayTitle,omitempty"`
	Offset        *float64    `json:"offset,omitempty"`
}

// LyricsList is getLyricsBySongId's result.
type LyricsList struct {
	StructuredLyrics []StructuredLyrics `json:"structuredLyrics"`
}

// GetLyrics searches lyrics by artist and title. No match yields an empty
// Lyrics rather than an error.
func (c *Client) GetLyrics(ctx context.Context, artist, title string) (Lyrics, error) {
	var p params
	p.str("artist", artist)
	p.str("title", title)
	return fetchOptional[Lyrics](ctx, c, "getLyrics", p, "lyrics")
}

// GetLyricsBySongID returns structured lyrics from an OpenSubsonic server.
func (c *Client) GetLyricsBySongID(ctx context.Context, id string) (LyricsList, error) {
	out, err := fetchOptional[LyricsList](ctx, c, "getLyricsBySongId", []Param{P("id", id)}, "lyricsList")
	if err != nil {
		return LyricsList{}, err
	}
	if out.StructuredLyrics == nil {
		out.StructuredLyrics = []StructuredLyrics{}
	}
	return out, nil
}
