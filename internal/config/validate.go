package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}
	if c.Client.ServerURL == "" {
		return errors.New("client.server_url must be set")
	}
	parsed, err := url.Parse(c.Client.ServerURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("client.server_url %q is not a valid URL", c.Client.ServerURL)
	}
	if c.Client.RequestTimeout <= 0 {
		return errors.New("client.request_timeout must be positive")
	}
	if c.Client.RetryAttempts < 1 {
		return errors.New("client.retry_attempts must be at least 1")
	}
	if c.Client.RetryDelay < 0 {
		return errors.New("client.retry_delay must not be negative")
	}
	if c.Client.InitialDelay < 0 {
		return errors.New("client.initial_delay must not be negative")
	}
	switch c.Client.SearchMode {
	case SearchModeSubstring, SearchModeExact:
	default:
		return fmt.Errorf("client.search_mode must be %q or %q", SearchModeSubstring, SearchModeExact)
	}
	return nil
}
