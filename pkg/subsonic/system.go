package subsonic

import "context"

// Ping checks connectivity and credentials. The returned ServerInfo comes
// from the envelope, so it is populated even though ping has no payload.
func (c *Client) Ping(ctx context.Context) (ServerInfo, error) {
	env, err := c.getEnvelope(ctx, "ping", nil)
	if err != nil {
		return ServerInfo{}, err
	}
	return ServerInfo{
		APIVersion:    env.Version,
		ServerType:    env.ServerType,
		ServerVersion: env.ServerVersion,
		OpenSubsonic:  env.OpenSubsonic,
	}, nil
}

// GetLicense returns the server's license details.
func (c *Client) GetLicense(ctx context.Context) (License, error) {
	return fetch[License](ctx, c, "getLicense", nil, "license")
}

// GetOpenSubsonicExtensions lists supported protocol extensions. Plain
// Subsonic servers return an empty list or code 70.
func (c *Client) GetOpenSubsonicExtensions(ctx context.Context) ([]OpenSubsonicExtension, error) {
	payload, err := c.get(ctx, "getOpenSubsonicExtensions", nil)
	if err != nil {
		return nil, err
	}
	if !payload.Has("openSubsonicExtensions") {
		return []OpenSubsonicExtension{}, nil
	}
	out, err := decodeSlice[OpenSubsonicExtension](payload["openSubsonicExtensions"], "openSubsonicExtensions")
	if err != nil {
		return nil, withEndpoint("getOpenSubsonicExtensions", err)
	}
	return out, nil
}

// TokenInfo reports which user an API key belongs to.
func (c *Client) TokenInfo(ctx context.Context) (TokenInfo, error) {
	return fetch[TokenInfo](ctx, c, "tokenInfo", nil, "tokenInfo")
}
