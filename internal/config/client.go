package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/sonar/pkg/subsonic"
)

// SubsonicOptions translates the server section into client options.
func (c *Config) SubsonicOptions() []subsonic.Option {
	s := c.Server
	opts := []subsonic.Option{
		subsonic.WithClientName(s.ClientName),
		subsonic.WithAPIVersion(s.APIVersion),
	}
	if s.TimeoutSeconds > 0 {
		opts = append(opts, subsonic.WithTimeout(time.Duration(s.TimeoutSeconds)*time.Second))
	}
	if s.InsecureSkipVerify {
		opts = append(opts, subsonic.WithInsecureSkipVerify())
	}
	return opts
}

// Credentials returns the configured auth mode wrapping the password.
func (c *Config) Credentials() (subsonic.Auth, error) {
	kind, err := subsonic.ParseAuthKind(c.Server.Auth)
	if err != nil {
		return subsonic.Auth{}, fmt.Errorf("server.auth: %w", err)
	}
	return subsonic.NewAuth(kind, c.Server.Password), nil
}

// NewClient builds a Subsonic client from the configuration.
func (c *Config) NewClient(logger *slog.Logger, extra ...subsonic.Option) (*subsonic.Client, error) {
	auth, err := c.Credentials()
	if err != nil {
		return nil, err
	}
	opts := c.SubsonicOptions()
	if logger != nil {
		opts = append(opts, subsonic.WithLogger(logger.With("component", "subsonic")))
	}
	opts = append(opts, extra...)
	client, err := subsonic.NewClient(c.Server.URL, c.Server.Username, auth, opts...)
	if err != nil {
		return nil, fmt.Errorf("create subsonic client: %w", err)
	}
	return client, nil
}
