package reconcile

import (
	"errors"
	"time"
)

var (
	// ErrNoOverlap is returned when the two sides share no identifier.
	ErrNoOverlap = errors.New("no common identifiers between sources")
	// ErrDuplicateID is returned when an identifier appears twice on one side.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// ReasonArchived is the verdict reason for pairs exempted as archive mirrors.
const ReasonArchived = "Archived URL"

// Side names one of the two inputs.
type Side string

const (
	// SideA holds the candidate (usually shortened) URLs. They are canonicalized.
	SideA Side = "a"
	// SideB holds the reference URLs. They are used as resolved.
	SideB Side = "b"
)

// URLPair is one row from a source: an identifier and its URL.
type URLPair struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// ResolvedPair is the outcome of resolving one aligned pair.
// ResolvedA and ResolvedB equal the input URL when resolution failed.
type ResolvedPair struct {
	ID        int64  `json:"id"`
	ResolvedA string `json:"resolved_a"`
	ResolvedB string `json:"resolved_b"`
}

// MismatchRecord describes a pair judged not to refer to the same resource.
type MismatchRecord struct {
	// ID is the shared identifier.
	ID int64 `json:"id"`
	// URL1 is the resolved and canonicalized side A URL.
	URL1 string `json:"url1"`
	// URL2 is the resolved side B URL.
	URL2 string `json:"url2"`
	// Reason is the comparator's verdict, e.g. "Different paths".
	Reason string `json:"reason"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// CommonIDs is the number of identifiers present on both sides.
	CommonIDs int `json:"common_ids"`
	// OnlyInA counts identifiers present only on side A.
	OnlyInA int `json:"only_in_a"`
	// OnlyInB counts identifiers present only on side B.
	OnlyInB int `json:"only_in_b"`
	// Compared counts pairs that went through the comparator.
	Compared int `json:"compared"`
	// Mismatches counts emitted mismatch records.
	Mismatches int `json:"mismatches"`
	// ArchiveSkipped counts pairs exempted as archive mirrors.
	ArchiveSkipped int `json:"archive_skipped"`
	// FetchWarnings counts failed fetches and non-2xx responses.
	FetchWarnings int `json:"fetch_warnings"`
	// Batches is the number of lockstep batches processed.
	Batches int `json:"batches"`
}

// Report is the structured result of one reconciliation run.
type Report struct {
	RunID      string           `json:"run_id"`
	StartedAt  time.Time        `json:"started_at"`
	Duration   time.Duration    `json:"duration"`
	Mismatches []MismatchRecord `json:"mismatches"`
	Summary    Summary          `json:"summary"`
}

// Verdict is the result of checking a single pair outside a full run.
type Verdict struct {
	URLA       string `json:"url_a"`
	URLB       string `json:"url_b"`
	ResolvedA  string `json:"resolved_a"`
	ResolvedB  string `json:"resolved_b"`
	CanonicalA string `json:"canonical_a"`
	Match      bool   `json:"match"`
	Reason     string `json:"reason"`
	Archived   bool   `json:"archived"`
	// Warnings lists fetch problems for either side.
	Warnings []string `json:"warnings,omitempty"`
}
