// Package config provides configuration loading and validation for the job
// portal server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Transport names accepted by the serve command.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// DefaultPort is the HTTP port used when neither the flag nor the PORT
// environment variable is set.
const DefaultPort = 3000

// Config holds the server configuration. Values come from CLI flags with
// environment variables as fallback.
type Config struct {
	Port      int
	Transport string
}

// FromEnv returns a Config populated from the environment, with defaults
// applied for anything unset. An unparsable PORT is reported as an error
// rather than silently ignored.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:      DefaultPort,
		Transport: TransportHTTP,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Transport = v
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.Transport != TransportHTTP && c.Transport != TransportStdio {
		return fmt.Errorf("config error: unknown transport %q", c.Transport)
	}
	return nil
}
