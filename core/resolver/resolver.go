package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// maxDrainBytes bounds how much of a body is read so the connection can be reused.
const maxDrainBytes = 64 * 1024

// ErrTooManyRedirects is returned when a redirect chain exceeds Config.MaxRedirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProgressFunc is called after each batch with the number of URLs done so far.
type ProgressFunc func(batch, done, total int)

// Resolver resolves URLs to their final destination under a shared connection cap.
type Resolver struct {
	client  Doer
	cfg     Config
	sem     *semaphore.Weighted
	headers http.Header
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the HTTP client. The client is responsible for
// following redirects.
func WithHTTPClient(client Doer) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// New creates a Resolver. Zero config values fall back to DefaultConfig.
func New(cfg Config, opts ...Option) *Resolver {
	cfg = cfg.withDefaults()

	r := &Resolver{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.Concurrency)),
		headers: http.Header{
			"User-Agent":      []string{cfg.UserAgent},
			"Accept":          []string{cfg.Accept},
			"Accept-Language": []string{cfg.AcceptLanguage},
			"Connection":      []string{"keep-alive"},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = newHTTPClient(cfg)
	}
	return r
}

// newHTTPClient builds a client whose transport never opens more connections
// than the configured concurrency.
func newHTTPClient(cfg Config) *http.Client {
	timeout := cfg.Timeout()
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxConnsPerHost:       cfg.Concurrency,
		MaxIdleConns:          cfg.Concurrency,
		MaxIdleConnsPerHost:   cfg.Concurrency,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	maxRedirects := cfg.MaxRedirects
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
			}
			return nil
		},
	}
}

// Config returns the effective configuration.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve returns the final URL for every input, in input order. Inputs are
// processed in batches of Config.BatchSize; failed fetches return the input.
func (r *Resolver) Resolve(ctx context.Context, urls []string) []string {
	return Finals(r.ResolveAll(ctx, urls, nil))
}

// ResolveAll resolves urls batch by batch and reports progress after each batch.
// Batch n+1 starts only after batch n has fully completed.
func (r *Resolver) ResolveAll(ctx context.Context, urls []string, progress ProgressFunc) []Resolution {
	session := r.NewSession()
	results := make([]Resolution, 0, len(urls))

	for start, batch := 0, 1; start < len(urls); start, batch = start+r.cfg.BatchSize, batch+1 {
		end := min(start+r.cfg.BatchSize, len(urls))
		results = append(results, session.ResolveBatch(ctx, urls[start:end])...)
		if progress != nil {
			progress(batch, len(results), len(urls))
		}
	}
	return results
}

// Fetch resolves a single URL. Blank input is returned as-is without a request.
func (r *Resolver) Fetch(ctx context.Context, rawURL string) Resolution {
	if isBlank(rawURL) {
		return skipped(rawURL)
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return Resolution{Input: rawURL, Final: rawURL, Err: err}
	}
	defer r.sem.Release(1)

	return r.doFetch(ctx, rawURL)
}

// doFetch performs one GET and reads the final URL off the last request.
func (r *Resolver) doFetch(ctx context.Context, rawURL string) Resolution {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Resolution{Input: rawURL, Final: rawURL, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	for key, values := range r.headers {
		req.Header[key] = values
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Resolution{Input: rawURL, Final: rawURL, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	final := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}

	return Resolution{
		Input:      rawURL,
		Final:      final,
		StatusCode: resp.StatusCode,
	}
}

// resolveConcurrently fetches every URL at once, bounded only by the semaphore,
// and writes each result to its input slot.
func resolveConcurrently(ctx context.Context, urls []string, fetch func(context.Context, string) Resolution) []Resolution {
	results := make([]Resolution, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		if isBlank(u) {
			results[i] = skipped(u)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = fetch(ctx, u)
		}()
	}
	wg.Wait()

	return results
}
