package urlcheck

import (
	"context"
	"errors"
	"fmt"

	"url-reconciler/core/reconcile"
	"url-reconciler/feature/sources"

	"go.uber.org/zap"
)

// ErrSourcesNotConfigured is returned when a sources run is requested without sources.
var ErrSourcesNotConfigured = errors.New("sources are not configured")

// sourcesCacheKey is the cache key of configured-sources runs.
const sourcesCacheKey = "sources"

// Service runs reconciliations for the HTTP handlers.
type Service struct {
	engine  *reconcile.Engine
	cache   *reconcile.ReportCache
	sourceA sources.Source
	sourceB sources.Source
	logger  *zap.Logger
}

// NewService creates a new urlcheck service. srcA and srcB may be nil, in
// which case only posted pairs can be reconciled.
func NewService(engine *reconcile.Engine, cache *reconcile.ReportCache, srcA, srcB sources.Source, logger *zap.Logger) *Service {
	if cache == nil {
		cache = reconcile.NewReportCache(0)
	}
	return &Service{
		engine:  engine,
		cache:   cache,
		sourceA: srcA,
		sourceB: srcB,
		logger:  logger,
	}
}

// HasSources reports whether both sources are configured.
func (s *Service) HasSources() bool {
	return s.sourceA != nil && s.sourceB != nil
}

// ReconcilePairs reconciles caller-supplied pairs. Results are not cached.
func (s *Service) ReconcilePairs(ctx context.Context, pairsA, pairsB []reconcile.URLPair) (*reconcile.Report, error) {
	return s.engine.Reconcile(ctx, pairsA, pairsB)
}

// ReconcileSources loads both configured sources and reconciles them. A fresh
// cached report is returned unless refresh is set.
func (s *Service) ReconcileSources(ctx context.Context, refresh bool) (*reconcile.Report, error) {
	if !s.HasSources() {
		return nil, ErrSourcesNotConfigured
	}
	if refresh {
		s.cache.Invalidate(sourcesCacheKey)
	}

	return s.cache.GetOrRun(ctx, sourcesCacheKey, func(ctx context.Context) (*reconcile.Report, error) {
		s.logger.Info("Loading sources",
			zap.String("source_a", s.sourceA.Name()),
			zap.String("source_b", s.sourceB.Name()),
		)
		pairsA, pairsB, err := sources.LoadBoth(ctx, s.sourceA, s.sourceB)
		if err != nil {
			return nil, fmt.Errorf("failed to load sources: %w", err)
		}
		return s.engine.Reconcile(ctx, pairsA, pairsB)
	})
}

// Check resolves and compares a single pair.
func (s *Service) Check(ctx context.Context, urlA, urlB string) reconcile.Verdict {
	return s.engine.CheckPair(ctx, urlA, urlB)
}

// Canonical canonicalizes rawURL with the engine's tracking set, without fetching it.
func (s *Service) Canonical(rawURL string) string {
	return s.engine.Canonicalizer().Canonicalize(rawURL)
}
