package subsonic

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// StarTargets selects what star and unstar act on. IDs are songs or
// folders; AlbumIDs and ArtistIDs are tag-based.
type StarTargets struct {
	IDs       []string
	AlbumIDs  []string
	ArtistIDs []string
}

func (t StarTargets) params() params {
	var p params
	p.each("id", t.IDs)
	p.each("albumId", t.AlbumIDs)
	p.each("artistId", t.ArtistIDs)
	return p
}

func (t StarTargets) empty() bool {
	return len(t.IDs) == 0 && len(t.AlbumIDs) == 0 && len(t.ArtistIDs) == 0
}

// Star marks targets as favourites.
func (c *Client) Star(ctx context.Context, targets StarTargets) error {
	if targets.empty() {
		return fmt.Errorf("star: no targets")
	}
	return c.exec(ctx, "star", targets.params())
}

// Unstar clears the favourite mark on targets.
func (c *Client) Unstar(ctx context.Context, targets StarTargets) error {
	if targets.empty() {
		return fmt.Errorf("unstar: no targets")
	}
	return c.exec(ctx, "unstar", targets.params())
}

// SetRating sets a 1-5 rating; 0 clears it.
func (c *Client) SetRating(ctx context.Context, id string, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("set rating: %d out of range 0-5", rating)
	}
	return c.exec(ctx, "setRating", []Param{P("id", id), P("rating", strconv.Itoa(rating))})
}

// Scrobble registers playback of id. A zero at omits the time; submission
// false records a now-playing notification instead of a play.
func (c *Client) Scrobble(ctx context.Context, id string, at time.Time, submission bool) error {
	p := params{P("id", id)}
	if !at.IsZero() {
		p.add("time", strconv.FormatInt(at.UnixMilli(), 10))
	}
	p.add("submission", strconv.FormatBool(submission))
	return c.exec(ctx, "scrobble", p)
}
