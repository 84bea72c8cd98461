package subsonic

import (
	"context"
	"errors"
	"strconv"
)

// UserRoles selects permissions for createUser and updateUser. Nil leaves
// the server default on create and the current value on update.
type UserRoles struct {
	LDAPAuthenticated *bool
	Admin             *bool
	Settings          *bool
	Stream            *bool
	Jukebox           *bool
	Download          *bool
	Upload            *bool
	Playlist          *bool
	CoverArt          *bool
	Comment           *bool
	Podcast           *bool
	Share             *bool
	VideoConversion   *bool
	MusicFolderIDs    []int64
	MaxBitRate        *int
}

func (r UserRoles) appendTo(p *params) {
	p.boolPtr("ldapAuthenticated", r.LDAPAuthenticated)
	p.boolPtr("adminRole", r.Admin)
	p.boolPtr("settingsRole", r.Settings)
	p.boolPtr("streamRole", r.Stream)
	p.boolPtr("jukeboxRole", r.Jukebox)
	p.boolPtr("downloadRole", r.Download)
	p.boolPtr("uploadRole", r.Upload)
	p.boolPtr("playlistRole", r.Playlist)
	p.boolPtr("coverArtRole", r.CoverArt)
	p.boolPtr("commentRole", r.Comment)
	p.boolPtr("podcastRole", r.Podcast)
	p.boolPtr("shareRole", r.Share)
	p.boolPtr("videoConversionRole", r.VideoConversion)
	for _, id := range r.MusicFolderIDs {
		p.add("musicFolderId", strconv.FormatInt(id, 10))
	}
}

// GetUser returns one account. Non-admins may only read their own.
func (c *Client) GetUser(ctx context.Context, username string) (User, error) {
	return fetch[User](ctx, c, "getUser", []Param{P("username", username)}, "user")
}

// GetUsers lists every account. Admin only.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	return fetchList[User](ctx, c, "getUsers", nil, "users", "user")
}

// CreateUser adds an account. MaxBitRate in roles is ignored; the protocol
// only accepts it on update.
func (c *Client) CreateUser(ctx context.Context, username, password, email string, roles UserRoles) error {
	if username == "" || password == "" || email == "" {
		return errors.New("create user: username, password and email required")
	}
	p := params{
		P("username", username),
		P("password", encodePassword(password)),
		P("email", email),
	}
	roles.appendTo(&p)
	return c.exec(ctx, "createUser", p)
}

// UpdateUser changes an account. Empty password and email are left as is.
func (c *Client) UpdateUser(ctx context.Context, username, password, email string, roles UserRoles) error {
	p := params{P("username", username)}
	if password != "" {
		p.add("password", encodePassword(password))
	}
	p.str("email", email)
	roles.appendTo(&p)
	p.intPtr("maxBitRate", roles.MaxBitRate)
	return c.exec(ctx, "updateUser", p)
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.exec(ctx, "deleteUser", []Param{P("username", username)})
}

// ChangePassword sets a new password for username.
func (c *Client) ChangePassword(ctx context.Context, username, password string) error {
	if password == "" {
		return errors.New("change password: password required")
	}
	return c.exec(ctx, "changePassword", []Param{P("username", username), P("password", encodePassword(password))})
}
