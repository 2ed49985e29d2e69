package resolver

import "strings"

// Outcome classifies a single fetch.
type Outcome string

const (
	// OutcomeResolved means the fetch completed with a 2xx status.
	OutcomeResolved Outcome = "ok"
	// OutcomeNon2xx means the fetch completed with a non-2xx status. Final is still valid.
	OutcomeNon2xx Outcome = "non_2xx"
	// OutcomeFailed means the fetch failed; Final equals Input.
	OutcomeFailed Outcome = "error"
	// OutcomeSkipped means the input was blank and was not fetched.
	OutcomeSkipped Outcome = "skipped"
)

// Resolution is the per-item result of resolving one URL.
type Resolution struct {
	// Input is the URL as given.
	Input string
	// Final is the URL after following redirects, or Input when the fetch
	// failed or was skipped.
	Final string
	// StatusCode is the status of the last response, 0 if none was received.
	StatusCode int
	// Err holds the transport or parse error for failed fetches.
	Err error
}

// Outcome reports how the fetch ended.
func (r Resolution) Outcome() Outcome {
	switch {
	case r.Err != nil:
		return OutcomeFailed
	case r.StatusCode == 0:
		return OutcomeSkipped
	case r.StatusCode < 200 || r.StatusCode > 299:
		return OutcomeNon2xx
	default:
		return OutcomeResolved
	}
}

// isBlank reports whether a URL should pass through without a fetch.
func isBlank(rawURL string) bool {
	return strings.TrimSpace(rawURL) == ""
}

// skipped builds the pass-through result for a blank input.
func skipped(rawURL string) Resolution {
	return Resolution{Input: rawURL, Final: rawURL}
}

// Finals extracts the Final URL of each resolution, preserving order.
func Finals(results []Resolution) []string {
	finals := make([]string, len(results))
	for i, r := range results {
		finals[i] = r.Final
	}
	return finals
}
