package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedReport is a report with its build time.
type cachedReport struct {
	report *Report
	built  time.Time
}

// ReportCache keeps recent reports keyed by the caller, so repeated requests
// for the same inputs do not refetch every URL.
type ReportCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	reports map[string]cachedReport
	sf      singleflight.Group
}

// NewReportCache creates a cache. A zero ttl disables caching: every call runs.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		ttl:     ttl,
		reports: make(map[string]cachedReport),
	}
}

// isFresh reports whether an entry is still within the TTL.
func (c *ReportCache) isFresh(entry cachedReport) bool {
	if c.ttl == 0 {
		return false
	}
	return time.Since(entry.built) <= c.ttl
}

// GetOrRun returns the cached report for key, or runs build to produce one.
// Concurrent callers with the same key share a single build.
func (c *ReportCache) GetOrRun(ctx context.Context, key string, build func(context.Context) (*Report, error)) (*Report, error) {
	// Fast path
	c.mu.RLock()
	entry, exists := c.reports[key]
	c.mu.RUnlock()

	if exists && c.isFresh(entry) {
		return entry.report, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		c.mu.RLock()
		entry, exists := c.reports[key]
		c.mu.RUnlock()

		if exists && c.isFresh(entry) {
			return entry.report, nil
		}

		report, err := build(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.reports[key] = cachedReport{report: report, built: time.Now()}
			c.mu.Unlock()
		}

		return report, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

// Invalidate drops the cached report for key.
func (c *ReportCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.reports, key)
	c.mu.Unlock()
}
