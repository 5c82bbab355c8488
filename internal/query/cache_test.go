package query

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchCachesByKey(t *testing.T) {
	cache := New(0, zap.NewNop())
	loads := 0

	load := func(ctx context.Context) (string, error) {
		loads++
		return fmt.Sprintf("load-%d", loads), nil
	}

	first, err := Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)
	second, err := Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)

	assert.Equal(t, "load-1", first)
	assert.Equal(t, "load-1", second)
	assert.Equal(t, 1, loads)

	// A different parameter tuple is its own entry.
	third, err := Fetch(context.Background(), cache, "exams", "page=2", load)
	require.NoError(t, err)
	assert.Equal(t, "load-2", third)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	cache := New(0, zap.NewNop())
	loads := 0
	load := func(ctx context.Context) (int, error) {
		loads++
		return loads, nil
	}

	_, err := Fetch(context.Background(), cache, "plans", "page=1", load)
	require.NoError(t, err)
	_, err = Fetch(context.Background(), cache, "currencies", "page=1", load)
	require.NoError(t, err)

	cache.Invalidate("plans")

	value, err := Fetch(context.Background(), cache, "plans", "page=1", load)
	require.NoError(t, err)
	assert.Equal(t, 3, value, "plans should have been re-fetched")

	value, err = Fetch(context.Background(), cache, "currencies", "page=1", load)
	require.NoError(t, err)
	assert.Equal(t, 2, value, "currencies should still be cached")
}

func TestConcurrentIdenticalFetchesAreDeduplicated(t *testing.T) {
	cache := New(0, zap.NewNop())

	var loads atomic.Int32
	release := make(chan struct{})
	load := func(ctx context.Context) (string, error) {
		loads.Add(1)
		<-release
		return "value", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := Fetch(context.Background(), cache, "exams", "page=1", load)
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}

	// Let the goroutines pile up on the same key, then release the load.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for _, result := range results {
		assert.Equal(t, "value", result)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	cache := New(0, zap.NewNop())
	loads := 0
	load := func(ctx context.Context) (string, error) {
		loads++
		if loads == 1 {
			return "", fmt.Errorf("boom")
		}
		return "ok", nil
	}

	_, err := Fetch(context.Background(), cache, "exams", "page=1", load)
	require.Error(t, err)

	value, err := Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 2, loads)
}

func TestTTLExpiresEntries(t *testing.T) {
	cache := New(time.Minute, zap.NewNop())
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	loads := 0
	load := func(ctx context.Context) (int, error) {
		loads++
		return loads, nil
	}

	_, err := Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)

	current = current.Add(30 * time.Second)
	_, err = Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)

	current = current.Add(2 * time.Minute)
	_, err = Fetch(context.Background(), cache, "exams", "page=1", load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}
