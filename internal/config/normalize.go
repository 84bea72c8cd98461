package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeServer()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	if c.UI.PollSeconds <= 0 {
		c.UI.PollSeconds = defaultPollSeconds
	}
	return nil
}

func (c *Config) normalizeServer() {
	s := &c.Server
	s.URL = strings.TrimRight(strings.TrimSpace(s.URL), "/")
	if s.URL != "" && !strings.Contains(s.URL, "://") {
		s.URL = "http://" + s.URL
	}
	s.Username = strings.TrimSpace(s.Username)
	s.PasswordEnv = strings.TrimSpace(s.PasswordEnv)
	if s.PasswordEnv == "" {
		s.PasswordEnv = defaultPasswordEnv
	}
	if value, ok := os.LookupEnv(s.PasswordEnv); ok && value != "" {
		s.Password = value
	}
	s.Auth = strings.ToLower(strings.TrimSpace(s.Auth))
	if s.Auth == "" {
		s.Auth = defaultAuth
	}
	s.ClientName = strings.TrimSpace(s.ClientName)
	s.APIVersion = strings.TrimSpace(s.APIVersion)
	if s.TimeoutSeconds == 0 {
		s.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "pretty", "text":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}
	return nil
}
