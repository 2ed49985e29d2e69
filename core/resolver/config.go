package resolver

import "time"

// Config holds configuration for URL resolution.
type Config struct {
	// Concurrency caps simultaneous outbound connections.
	Concurrency int `mapstructure:"concurrency" default:"10"`
	// BatchSize is the number of URLs resolved per batch.
	BatchSize int `mapstructure:"batch_size" default:"50"`
	// TimeoutSeconds bounds a single fetch, redirects included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int `mapstructure:"max_redirects" default:"10"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	// Accept is sent with every request.
	Accept string `mapstructure:"accept" default:"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"`
	// AcceptLanguage is sent with every request.
	AcceptLanguage string `mapstructure:"accept_language" default:"en-US,en;q=0.5"`
}

const (
	DefaultConcurrency    = 10
	DefaultBatchSize      = 50
	DefaultTimeout        = 30 * time.Second
	DefaultMaxRedirects   = 10
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	DefaultAcceptLanguage = "en-US,en;q=0.5"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Concurrency:    DefaultConcurrency,
		BatchSize:      DefaultBatchSize,
		TimeoutSeconds: int(DefaultTimeout / time.Second),
		MaxRedirects:   DefaultMaxRedirects,
		UserAgent:      DefaultUserAgent,
		Accept:         DefaultAccept,
		AcceptLanguage: DefaultAcceptLanguage,
	}
}

// withDefaults fills zero values so a partially populated Config is usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Concurrency <= 0 {
		c.Concurrency = d.Concurrency
	}
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = d.MaxRedirects
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.Accept == "" {
		c.Accept = d.Accept
	}
	if c.AcceptLanguage == "" {
		c.AcceptLanguage = d.AcceptLanguage
	}
	return c
}

// Timeout returns the per-fetch timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
