// Package urlcheck exposes URL reconciliation over HTTP.
//
// Routes are mounted under /reconcile:
//   - POST /reconcile: reconcile two posted pair lists
//   - GET /reconcile/sources: reconcile the configured sources
//   - GET /reconcile/check: resolve and compare one pair
//   - GET /reconcile/canonical: canonicalize one URL without fetching it
//
// # Usage
//
//	feature := urlcheck.NewFeature(engine, cache, srcA, srcB, logger)
//	mgr.Register(feature)
package urlcheck
