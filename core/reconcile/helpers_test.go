package reconcile

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"url-reconciler/core/resolver"
)

// fakeWeb maps a requested URL to where it redirects. URLs not in the map
// answer 200 in place; URLs mapped to "" fail with a transport error.
type fakeWeb struct {
	mu        sync.Mutex
	redirects map[string]string
	status    map[string]int
	calls     map[string]int
}

func newFakeWeb(redirects map[string]string) *fakeWeb {
	return &fakeWeb{
		redirects: redirects,
		status:    map[string]int{},
		calls:     map[string]int{},
	}
}

func (f *fakeWeb) Do(req *http.Request) (*http.Response, error) {
	raw := req.URL.String()

	f.mu.Lock()
	f.calls[raw]++
	target, redirected := f.redirects[raw]
	status, hasStatus := f.status[raw]
	f.mu.Unlock()

	if redirected && target == "" {
		return nil, errors.New("connection refused")
	}

	final := req.URL
	if redirected {
		u, err := url.Parse(target)
		if err != nil {
			return nil, err
		}
		final = u
	}
	if !hasStatus {
		status = http.StatusOK
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    &http.Request{Method: http.MethodGet, URL: final},
	}, nil
}

func (f *fakeWeb) callCount(raw string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[raw]
}

func newTestEngine(web *fakeWeb, cfg Config, batchSize int, opts ...EngineOption) *Engine {
	r := resolver.New(resolver.Config{BatchSize: batchSize}, resolver.WithHTTPClient(web))
	return NewEngine(r, cfg, opts...)
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	progress   []BatchProgress
	warnings   []FetchWarning
	archived   []int64
	mismatches []MismatchRecord
}

func (r *recordingObserver) BatchProgress(p BatchProgress) { r.progress = append(r.progress, p) }
func (r *recordingObserver) FetchWarning(w FetchWarning)   { r.warnings = append(r.warnings, w) }
func (r *recordingObserver) ArchiveSkipped(id int64, _ string) {
	r.archived = append(r.archived, id)
}
func (r *recordingObserver) MismatchFound(m MismatchRecord) { r.mismatches = append(r.mismatches, m) }

// observerFunc reacts to batch progress only.
type observerFunc func(BatchProgress)

func (f observerFunc) BatchProgress(p BatchProgress) { f(p) }
func (observerFunc) FetchWarning(FetchWarning)       {}
func (observerFunc) ArchiveSkipped(int64, string)    {}
func (observerFunc) MismatchFound(MismatchRecord)    {}
