package server

import (
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// RequestTimeoutSeconds bounds reading a request and writing its response.
	// Reconciliations over many URLs take minutes, so keep it generous.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"600"`
	// BodyLimitMB caps the size of POSTed pair lists.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8"`
}

// IsValidPort checks that Port is a TCP port number.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p < 65536
}

// Address returns the listen address.
func (c Config) Address() string {
	return ":" + c.Port
}

// RequestTimeout returns the request timeout as a duration. Zero means no timeout.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// BodyLimit returns the body limit in bytes, defaulting to 4MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
