// Package reconcile compares two ID-aligned lists of URLs and reports the
// pairs that do not point at the same resource.
//
// The reconcile system sits on top of the resolver and canonical packages:
//   - Pairs from both sides are restricted to the identifiers they share and
//     sorted ascending, so position i on side A and side B is the same entity.
//   - Both URL lists are resolved in lockstep batches. Batch n+1 starts only
//     after batch n has completed for both sides.
//   - Resolved side A URLs are canonicalized (tracking parameters and
//     trailing slashes removed). Side B URLs are used as resolved.
//   - Pairs whose side B URL lands on an archive mirror are skipped.
//   - Every other pair goes through canonical.Compare; non-matching pairs
//     become MismatchRecords, returned in identifier order.
//
// # Architecture
//
// 1. Engine: owns the resolver, canonicalizer and configuration, and runs
// one reconciliation per Reconcile call.
//
// 2. Observer: receives discrete events (batch progress, fetch warnings,
// archive skips, mismatches). The engine never logs on its own; LogObserver
// writes the events through zap and Observers fans out to several sinks.
//
// 3. ReportCache: TTL cache with stampede protection for callers that
// serve the same reconciliation repeatedly (the HTTP API).
//
// # Errors
//
// ErrNoOverlap is returned when the two sides share no identifier; no
// report is produced. ErrDuplicateID is returned when one side repeats an
// identifier, since positional alignment would silently pair unrelated rows.
// Per-URL fetch failures never fail a run: they surface as FetchWarning
// events and the input URL is used as-is. A canceled context stops the run
// before the next batch and Reconcile returns the context error.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(resolver.New(cfg.Resolver), cfg.Reconcile,
//	    reconcile.WithObserver(reconcile.NewLogObserver(log)))
//
//	report, err := engine.Reconcile(ctx, pairsA, pairsB)
//	if errors.Is(err, reconcile.ErrNoOverlap) {
//	    // nothing to compare
//	}
//
//	// Targeted check of a single pair
//	verdict := engine.CheckPair(ctx, shortURL, longURL)
package reconcile
