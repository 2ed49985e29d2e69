package reconcile

import "strings"

// Config holds configuration for a reconciliation run.
type Config struct {
	// ArchiveHost is matched as a substring of the side B host. Matching
	// pairs are never reported.
	ArchiveHost string `mapstructure:"archive_host" default:"web.archive.org"`
	// PathSuffix is stripped from paths before comparison.
	PathSuffix string `mapstructure:"path_suffix" default:"/cl/s"`
	// ExtraTrackingParams is a comma separated list added to the built-in
	// tracking parameter set.
	ExtraTrackingParams string `mapstructure:"extra_tracking_params" default:""`
	// CacheTTLSeconds controls how long the HTTP API reuses a report. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

const (
	DefaultArchiveHost = "web.archive.org"
)

// TrackingParams returns the extra tracking parameter names, trimmed and without blanks.
func (c Config) TrackingParams() []string {
	var names []string
	for _, name := range strings.Split(c.ExtraTrackingParams, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
