// Package metrics exposes Prometheus metrics for reconciliation runs and the HTTP API.
//
// Metrics implements reconcile.Observer, so it can be attached to an Engine
// next to the log observer. Collectors are registered on the registry passed
// to New; tests use a private registry.
//
// # Usage
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	engine := reconcile.NewEngine(r, cfg, reconcile.WithObserver(
//	    reconcile.Observers(reconcile.NewLogObserver(log), m)))
//
//	app.Use(m.Middleware())
//	app.Get("/metrics", m.Handler(reg))
package metrics
