package resolver

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Session scopes duplicate suppression to a single run. Identical URLs
// resolved through the same Session are fetched once; concurrent callers
// share the in-flight fetch.
type Session struct {
	resolver *Resolver

	mu      sync.RWMutex
	results map[string]Resolution
	sf      singleflight.Group
}

// NewSession starts a run-scoped session.
func (r *Resolver) NewSession() *Session {
	return &Session{
		resolver: r,
		results:  make(map[string]Resolution),
	}
}

// ResolveBatch fetches all non-blank URLs concurrently and returns one
// Resolution per input, in input order.
func (s *Session) ResolveBatch(ctx context.Context, urls []string) []Resolution {
	return resolveConcurrently(ctx, urls, s.fetch)
}

// fetch returns the session result for rawURL, fetching it at most once.
func (s *Session) fetch(ctx context.Context, rawURL string) Resolution {
	s.mu.RLock()
	res, ok := s.results[rawURL]
	s.mu.RUnlock()
	if ok {
		return res
	}

	v, _, _ := s.sf.Do(rawURL, func() (interface{}, error) {
		s.mu.RLock()
		res, ok := s.results[rawURL]
		s.mu.RUnlock()
		if ok {
			return res, nil
		}

		res = s.resolver.Fetch(ctx, rawURL)

		s.mu.Lock()
		s.results[rawURL] = res
		s.mu.Unlock()
		return res, nil
	})
	return v.(Resolution)
}

// Len returns the number of distinct URLs fetched in this session.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
