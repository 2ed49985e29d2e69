// Package logger builds the zap loggers used by the CLI and the server.
//
// Level "debug" selects zap's development config (console, ISO8601 times);
// anything else uses the production config with the configured encoding.
//
// # Run Logs
//
// File adds an output path next to stderr. "{ts}" in the path expands to the
// start time (20060102_150405), so each reconcile run writes its own log,
// e.g. logs/reconcile_{ts}.log. Missing directories are created.
//
// # Request Correlation
//
// WithRayID attaches the request's RayID (set by the rayid middleware) to a
// logger so every line of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", File: "logs/reconcile_{ts}.log"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
