package resolver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"url-reconciler/core/resolver"
)

func newRedirectServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/hop", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final/page", http.StatusFound)
	})
	mux.HandleFunc("/final/page", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/headers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != resolver.DefaultUserAgent || r.Header.Get("Accept-Language") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_FollowsRedirects(t *testing.T) {
	srv := newRedirectServer(t)
	r := resolver.New(resolver.Config{})

	res := r.Fetch(context.Background(), srv.URL+"/short")

	require.NoError(t, res.Err)
	assert.Equal(t, srv.URL+"/final/page", res.Final)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, resolver.OutcomeResolved, res.Outcome())
}

func TestFetch_Non2xxStillResolves(t *testing.T) {
	srv := newRedirectServer(t)
	r := resolver.New(resolver.Config{})

	res := r.Fetch(context.Background(), srv.URL+"/missing")

	require.NoError(t, res.Err)
	assert.Equal(t, srv.URL+"/missing", res.Final)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, resolver.OutcomeNon2xx, res.Outcome())
}

func TestFetch_SendsBrowserHeaders(t *testing.T) {
	srv := newRedirectServer(t)
	r := resolver.New(resolver.Config{})

	res := r.Fetch(context.Background(), srv.URL+"/headers")

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestFetch_FailOpen(t *testing.T) {
	r := resolver.New(resolver.Config{TimeoutSeconds: 1})

	tests := []struct {
		name  string
		input string
	}{
		{"Unsupported scheme", "ftp://example.com/file"},
		{"Malformed", "http://[::1"},
		{"Connection refused", "http://127.0.0.1:1/nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Fetch(context.Background(), tt.input)
			assert.Error(t, res.Err)
			assert.Equal(t, tt.input, res.Final)
			assert.Equal(t, resolver.OutcomeFailed, res.Outcome())
		})
	}
}

func TestFetch_TooManyRedirects(t *testing.T) {
	srv := newRedirectServer(t)
	r := resolver.New(resolver.Config{MaxRedirects: 3})

	res := r.Fetch(context.Background(), srv.URL+"/loop")

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, resolver.ErrTooManyRedirects)
	assert.Equal(t, srv.URL+"/loop", res.Final)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer srv.Close()

	r := resolver.New(resolver.Config{TimeoutSeconds: 1})

	start := time.Now()
	res := r.Fetch(context.Background(), srv.URL+"/slow")

	assert.Error(t, res.Err)
	assert.Equal(t, srv.URL+"/slow", res.Final)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestFetch_BlankPassesThrough(t *testing.T) {
	client := &countingClient{}
	r := resolver.New(resolver.Config{}, resolver.WithHTTPClient(client))

	for _, in := range []string{"", "   "} {
		res := r.Fetch(context.Background(), in)
		assert.Equal(t, in, res.Final)
		assert.NoError(t, res.Err)
		assert.Equal(t, resolver.OutcomeSkipped, res.Outcome())
	}
	assert.Zero(t, client.calls.Load())
}

func TestResolve_PreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Earlier paths answer later so completion order is reversed.
		switch r.URL.Path {
		case "/a":
			time.Sleep(60 * time.Millisecond)
		case "/b":
			time.Sleep(30 * time.Millisecond)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := resolver.New(resolver.Config{})
	inputs := []string{srv.URL + "/a", "", srv.URL + "/b", "http://[::1", srv.URL + "/c"}

	got := r.Resolve(context.Background(), inputs)

	assert.Equal(t, inputs, got)
}

func TestResolve_Empty(t *testing.T) {
	r := resolver.New(resolver.Config{})
	assert.Empty(t, r.Resolve(context.Background(), nil))
}

func TestResolveAll_BatchesAndProgress(t *testing.T) {
	client := &countingClient{}
	r := resolver.New(resolver.Config{BatchSize: 2}, resolver.WithHTTPClient(client))

	inputs := []string{"http://a.test/1", "http://a.test/2", "http://a.test/3", "http://a.test/4", "http://a.test/5"}

	var batches []int
	var done []int
	results := r.ResolveAll(context.Background(), inputs, func(batch, n, total int) {
		batches = append(batches, batch)
		done = append(done, n)
		assert.Equal(t, len(inputs), total)
	})

	require.Len(t, results, len(inputs))
	assert.Equal(t, []int{1, 2, 3}, batches)
	assert.Equal(t, []int{2, 4, 5}, done)
	assert.Equal(t, inputs, resolver.Finals(results))
	assert.Equal(t, int64(5), client.calls.Load())
}

func TestResolve_ConcurrencyCap(t *testing.T) {
	var inFlight, peak atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := resolver.New(resolver.Config{Concurrency: 3, BatchSize: 20})

	inputs := make([]string, 20)
	for i := range inputs {
		inputs[i] = srv.URL + "/item/" + string(rune('a'+i))
	}
	r.Resolve(context.Background(), inputs)

	assert.LessOrEqual(t, peak.Load(), int64(3))
	assert.Greater(t, peak.Load(), int64(0))
}

func TestSession_CollapsesDuplicates(t *testing.T) {
	client := &countingClient{}
	r := resolver.New(resolver.Config{}, resolver.WithHTTPClient(client))
	session := r.NewSession()

	urls := []string{"http://a.test/x", "http://a.test/x", "http://a.test/y"}
	first := session.ResolveBatch(context.Background(), urls)
	second := session.ResolveBatch(context.Background(), []string{"http://a.test/x"})

	assert.Equal(t, urls, resolver.Finals(first))
	assert.Equal(t, "http://a.test/x", second[0].Final)
	assert.Equal(t, int64(2), client.calls.Load())
	assert.Equal(t, 2, session.Len())
}

func TestFetch_CanceledContext(t *testing.T) {
	r := resolver.New(resolver.Config{Concurrency: 1}, resolver.WithHTTPClient(&countingClient{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Fetch(ctx, "http://a.test/x")

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, "http://a.test/x", res.Final)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := resolver.New(resolver.Config{}).Config()

	assert.Equal(t, resolver.DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, resolver.DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, resolver.DefaultTimeout, cfg.Timeout())
	assert.Equal(t, resolver.DefaultMaxRedirects, cfg.MaxRedirects)
}
