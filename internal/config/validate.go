package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/five82/sonar/pkg/subsonic"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.UI.PollSeconds < 1 {
		return errors.New("ui.poll_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateServer() error {
	s := c.Server
	if s.URL == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			path = defaultConfigPath
		}
		return fmt.Errorf("server.url is required. Edit %s (create with 'sonar config init')", path)
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("server.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("server.url must include a host")
	}
	if s.Username == "" {
		return errors.New("server.username is required")
	}
	if s.Password == "" {
		return fmt.Errorf("server.password is required. Set %s or edit the config file", s.PasswordEnv)
	}
	if _, err := subsonic.ParseAuthKind(s.Auth); err != nil {
		return fmt.Errorf("server.auth: %w", err)
	}
	if s.TimeoutSeconds < 0 {
		return errors.New("server.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
