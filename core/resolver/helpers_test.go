package resolver_test

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// countingClient answers every request with 200 at the requested URL.
type countingClient struct {
	calls atomic.Int64
}

func (c *countingClient) Do(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	c.calls.Add(1)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}
