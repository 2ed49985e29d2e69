// Package server holds the HTTP server configuration.
//
// While cmd/start.go handles the server startup, this package defines the
// configuration structure and the values derived from it.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, the request timeout
// (reconciliations can run for minutes) and the body size limit.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
