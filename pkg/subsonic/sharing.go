package subsonic

import (
	"context"
	"errors"
	"strconv"
	"time"
)

func shareParams(description string, expires time.Time) params {
	var p params
	p.str("description", description)
	if !expires.IsZero() {
		p.add("expires", strconv.FormatInt(expires.UnixMilli(), 10))
	}
	return p
}

// GetShares lists the user's shares.
func (c *Client) GetShares(ctx context.Context) ([]Share, error) {
	return fetchList[Share](ctx, c, "getShares", nil, "shares", "share")
}

// CreateShare publishes ids as a share. A zero expires never expires. The
// server answers with the new share; servers that return none yield a zero
// Share.
func (c *Client) CreateShare(ctx context.Context, ids []string, description string, expires time.Time) (Share, error) {
	if len(ids) == 0 {
		return Share{}, errors.New("create share: no ids")
	}
	var p params
	p.each("id", ids)
	p = append(p, shareParams(description, expires)...)
	shares, err := fetchList[Share](ctx, c, "createShare", p, "shares", "share")
	if err != nil || len(shares) == 0 {
		return Share{}, err
	}
	return shares[0], nil
}

// UpdateShare changes the description or expiry of a share.
func (c *Client) UpdateShare(ctx context.Context, id, description string, expires time.Time) error {
	p := params{P("id", id)}
	p = append(p, shareParams(description, expires)...)
	return c.exec(ctx, "updateShare", p)
}

// DeleteShare revokes a share.
func (c *Client) DeleteShare(ctx context.Context, id string) error {
	return c.exec(ctx, "deleteShare", []Param{P("id", id)})
}
