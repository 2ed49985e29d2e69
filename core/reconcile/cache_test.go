package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReportCache_ReusesFreshReport tests that a fresh entry skips the build.
func TestReportCache_ReusesFreshReport(t *testing.T) {
	cache := NewReportCache(time.Minute)
	var builds atomic.Int32
	build := func(context.Context) (*Report, error) {
		builds.Add(1)
		return &Report{RunID: "run"}, nil
	}

	first, err := cache.GetOrRun(context.Background(), "sources", build)
	require.NoError(t, err)
	second, err := cache.GetOrRun(context.Background(), "sources", build)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), builds.Load())

	cache.Invalidate("sources")
	_, err = cache.GetOrRun(context.Background(), "sources", build)
	require.NoError(t, err)
	assert.Equal(t, int32(2), builds.Load())
}

// TestReportCache_Disabled tests that a zero TTL always rebuilds.
func TestReportCache_Disabled(t *testing.T) {
	cache := NewReportCache(0)
	var builds atomic.Int32
	build := func(context.Context) (*Report, error) {
		builds.Add(1)
		return &Report{}, nil
	}

	for i := 0; i < 3; i++ {
		_, err := cache.GetOrRun(context.Background(), "k", build)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), builds.Load())
}

// TestReportCache_ErrorsNotCached tests that a failed build is retried next time.
func TestReportCache_ErrorsNotCached(t *testing.T) {
	cache := NewReportCache(time.Minute)
	fail := true
	build := func(context.Context) (*Report, error) {
		if fail {
			return nil, ErrNoOverlap
		}
		return &Report{}, nil
	}

	_, err := cache.GetOrRun(context.Background(), "k", build)
	assert.True(t, errors.Is(err, ErrNoOverlap))

	fail = false
	report, err := cache.GetOrRun(context.Background(), "k", build)
	require.NoError(t, err)
	assert.NotNil(t, report)
}

// TestReportCache_Stampede tests that concurrent callers share one build.
func TestReportCache_Stampede(t *testing.T) {
	cache := NewReportCache(time.Minute)
	var builds atomic.Int32
	release := make(chan struct{})
	build := func(context.Context) (*Report, error) {
		builds.Add(1)
		<-release
		return &Report{}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.GetOrRun(context.Background(), "k", build)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
}
