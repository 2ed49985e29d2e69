package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"url-reconciler/core/canonical"
	"url-reconciler/core/resolver"

	"github.com/google/uuid"
)

// Engine runs reconciliations. It is safe for concurrent use; each Reconcile
// call gets its own resolver session.
type Engine struct {
	resolver *resolver.Resolver
	canon    *canonical.Canonicalizer
	cfg      Config
	observer Observer
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithObserver sets the event sink. The default discards events.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// NewEngine creates an Engine. Empty config values fall back to defaults.
func NewEngine(r *resolver.Resolver, cfg Config, opts ...EngineOption) *Engine {
	if cfg.ArchiveHost == "" {
		cfg.ArchiveHost = DefaultArchiveHost
	}
	if cfg.PathSuffix == "" {
		cfg.PathSuffix = canonical.DefaultPathSuffix
	}

	tracking := canonical.DefaultTrackingParams()
	tracking.Add(cfg.TrackingParams()...)

	e := &Engine{
		resolver: r,
		canon:    canonical.New(tracking, cfg.PathSuffix),
		cfg:      cfg,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Canonicalizer returns the canonicalizer used for side A URLs.
func (e *Engine) Canonicalizer() *canonical.Canonicalizer {
	return e.canon
}

// Reconcile aligns both sides on their shared identifiers, resolves every URL
// and returns the mismatching pairs in identifier order.
func (e *Engine) Reconcile(ctx context.Context, pairsA, pairsB []URLPair) (*Report, error) {
	started := time.Now()

	aligned, err := align(pairsA, pairsB)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		Mismatches: []MismatchRecord{},
		Summary: Summary{
			CommonIDs: len(aligned.ids),
			OnlyInA:   aligned.onlyInA,
			OnlyInB:   aligned.onlyInB,
		},
	}

	resolved := e.resolveLockstep(ctx, aligned, &report.Summary)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reconciliation interrupted after %d batches: %w", report.Summary.Batches, err)
	}

	for _, pair := range resolved {
		if e.isArchived(pair.ResolvedB) {
			report.Summary.ArchiveSkipped++
			e.observer.ArchiveSkipped(pair.ID, pair.ResolvedB)
			continue
		}

		canonA := e.canon.Canonicalize(pair.ResolvedA)
		report.Summary.Compared++

		match, reason := e.canon.Compare(canonA, pair.ResolvedB)
		if match {
			continue
		}

		record := MismatchRecord{
			ID:     pair.ID,
			URL1:   canonA,
			URL2:   pair.ResolvedB,
			Reason: reason,
		}
		report.Mismatches = append(report.Mismatches, record)
		e.observer.MismatchFound(record)
	}

	report.Summary.Mismatches = len(report.Mismatches)
	report.Duration = time.Since(started)
	return report, nil
}

// resolveLockstep resolves both URL lists with identical batch boundaries.
// Both halves of a batch are fetched together under the resolver's connection cap.
func (e *Engine) resolveLockstep(ctx context.Context, a *alignment, summary *Summary) []ResolvedPair {
	session := e.resolver.NewSession()
	batchSize := e.resolver.Config().BatchSize
	total := len(a.ids)
	resolved := make([]ResolvedPair, 0, total)

	for start, batch := 0, 1; start < total && ctx.Err() == nil; start, batch = start+batchSize, batch+1 {
		end := min(start+batchSize, total)
		n := end - start

		urls := make([]string, 0, 2*n)
		urls = append(urls, a.urlsA[start:end]...)
		urls = append(urls, a.urlsB[start:end]...)
		results := session.ResolveBatch(ctx, urls)

		for i := 0; i < n; i++ {
			id := a.ids[start+i]
			resA, resB := results[i], results[n+i]
			summary.FetchWarnings += e.warn(id, SideA, resA) + e.warn(id, SideB, resB)
			resolved = append(resolved, ResolvedPair{
				ID:        id,
				ResolvedA: resA.Final,
				ResolvedB: resB.Final,
			})
		}

		summary.Batches = batch
		e.observer.BatchProgress(BatchProgress{Batch: batch, Size: n, Done: end, Total: total})
	}
	return resolved
}

// warn reports a fetch problem and returns 1 if there was one.
func (e *Engine) warn(id int64, side Side, res resolver.Resolution) int {
	switch res.Outcome() {
	case resolver.OutcomeFailed, resolver.OutcomeNon2xx:
		e.observer.FetchWarning(FetchWarning{
			ID:         id,
			Side:       side,
			URL:        res.Input,
			StatusCode: res.StatusCode,
			Err:        res.Err,
		})
		return 1
	default:
		return 0
	}
}

// isArchived reports whether a resolved URL lives on the archive mirror.
// Unparseable or hostless URLs are matched on the whole string.
func (e *Engine) isArchived(rawURL string) bool {
	host := canonical.Host(rawURL)
	if host == "" {
		return strings.Contains(rawURL, e.cfg.ArchiveHost)
	}
	return strings.Contains(host, e.cfg.ArchiveHost)
}

// CheckPair resolves and compares a single pair the same way Reconcile does,
// without identifiers or batching.
func (e *Engine) CheckPair(ctx context.Context, urlA, urlB string) Verdict {
	results := e.resolver.NewSession().ResolveBatch(ctx, []string{urlA, urlB})
	resA, resB := results[0], results[1]

	v := Verdict{
		URLA:      urlA,
		URLB:      urlB,
		ResolvedA: resA.Final,
		ResolvedB: resB.Final,
	}
	for _, res := range results {
		switch res.Outcome() {
		case resolver.OutcomeFailed:
			v.Warnings = append(v.Warnings, res.Input+": "+res.Err.Error())
		case resolver.OutcomeNon2xx:
			v.Warnings = append(v.Warnings, res.Input+": status "+strconv.Itoa(res.StatusCode))
		}
	}

	v.CanonicalA = e.canon.Canonicalize(resA.Final)
	if e.isArchived(resB.Final) {
		v.Archived = true
		v.Match = true
		v.Reason = ReasonArchived
		return v
	}

	v.Match, v.Reason = e.canon.Compare(v.CanonicalA, resB.Final)
	return v
}
