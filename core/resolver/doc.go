// Package resolver follows HTTP redirects to find where a URL finally lands.
//
// A Resolver issues one GET per URL (no retries), follows redirects up to a
// configured limit and reports the final request URL. Failures never abort a
// batch: the Resolution for a failed fetch carries the error and keeps the
// input URL as its Final value (fail-open). A non-2xx status is recorded but
// still counts as resolved.
//
// # Concurrency
//
// All fetches made through one Resolver share a weighted semaphore sized by
// Config.Concurrency, so the connection cap holds even when several batches are
// in flight at once. Within a batch every non-blank URL is fetched
// concurrently and results are written back to their input slot, so output
// order always matches input order regardless of completion order.
//
// A Session collapses duplicate URLs for the duration of a single run: the
// same shortened link appearing twice is fetched once. Sessions are not
// shared across runs.
//
// # Usage
//
//	r := resolver.New(cfg)
//	finals := r.Resolve(ctx, []string{"http://bit.ly/abc", ""})
package resolver
