package subsonic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// JukeboxAction is the action= argument of jukeboxControl.
type JukeboxAction string

const (
	JukeboxActionGet     JukeboxAction = "get"
	JukeboxActionStatus  JukeboxAction = "status"
	JukeboxActionSet     JukeboxAction = "set"
	JukeboxActionStart   JukeboxAction = "start"
	JukeboxActionStop    JukeboxAction = "stop"
	JukeboxActionSkip    JukeboxAction = "skip"
	JukeboxActionAdd     JukeboxAction = "add"
	JukeboxActionClear   JukeboxAction = "clear"
	JukeboxActionRemove  JukeboxAction = "remove"
	JukeboxActionShuffle JukeboxAction = "shuffle"
	JukeboxActionSetGain JukeboxAction = "setGain"
)

// JukeboxArgs carries the per-action arguments. Index applies to skip and
// remove, Offset (seconds) to skip, IDs to add and set, Gain to setGain.
type JukeboxArgs struct {
	Index  *int
	Offset *int
	IDs    []string
	Gain   *float64
}

func (a JukeboxArgs) params(action JukeboxAction) params {
	p := params{P("action", string(action))}
	p.intPtr("index", a.Index)
	p.intPtr("offset", a.Offset)
	p.each("id", a.IDs)
	if a.Gain != nil {
		p.add("gain", strconv.FormatFloat(*a.Gain, 'f', -1, 64))
	}
	return p
}

// JukeboxControl runs action on the server-side player and returns the
// resulting status. Use JukeboxPlaylist for the get action, which answers
// with the queue instead.
func (c *Client) JukeboxControl(ctx context.Context, action JukeboxAction, args JukeboxArgs) (JukeboxStatus, error) {
	switch action {
	case JukeboxActionGet:
		return JukeboxStatus{}, fmt.Errorf("jukebox control: use JukeboxPlaylist for %q", action)
	case JukeboxActionSetGain:
		if args.Gain == nil || *args.Gain < 0 || *args.Gain > 1 {
			return JukeboxStatus{}, errors.New("jukebox control: setGain needs a gain in 0-1")
		}
	case "":
		return JukeboxStatus{}, errors.New("jukebox control: action required")
	}
	return fetch[JukeboxStatus](ctx, c, "jukeboxControl", args.params(action), "jukeboxStatus")
}

// JukeboxPlaylist returns the jukebox status together with its queue.
func (c *Client) JukeboxPlaylist(ctx context.Context) (JukeboxPlaylist, error) {
	out, err := fetch[JukeboxPlaylist](ctx, c, "jukeboxControl", JukeboxArgs{}.params(JukeboxActionGet), "jukeboxPlaylist")
	if err != nil {
		return JukeboxPlaylist{}, err
	}
	if out.Entries == nil {
		out.Entries = []Child{}
	}
	return out, nil
}
