// Package config provides configuration management for the URL reconciler.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// environment variables and a .env file. Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, timeouts)
//   - Log: logging level, format and optional run log file
//   - Database, Postgres, Storage, Sheets: connections used by data sources
//   - Resolver: concurrency, batch size, timeout and request headers
//   - Reconcile: archive host, shortener path suffix, extra tracking params
//   - SourceA, SourceB: where each URL list is read from
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Resolver.BatchSize)
package config
