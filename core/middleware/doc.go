// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation. An empty key disables the check, and
//     listed paths (e.g. /metrics) bypass it.
//   - rayid: assigns every request a RayID, stores it in the context under
//     "ray_id" (read by logger.WithRayID) and echoes it in the X-Ray-ID header.
//
// RayID must be registered first so every later log line carries it.
package middleware
