package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWindow returns a limiter with a controllable clock.
func newTestWindow(limit int, window time.Duration) (*FixedWindow, *time.Time) {
	fw := NewFixedWindow(limit, window)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fw.now = func() time.Time { return current }
	return fw, &current
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	fw, _ := newTestWindow(5, time.Minute)

	for i := 0; i < 5; i++ {
		allowed, info := fw.Allow("client-a")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}

	allowed, info := fw.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, time.Minute, info.RetryAfter)
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	fw, _ := newTestWindow(1, time.Minute)

	allowed, _ := fw.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = fw.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = fw.Allow("client-b")
	assert.True(t, allowed, "a throttled client must not affect others")
}

func TestFixedWindowResetsAfterWindow(t *testing.T) {
	fw, clock := newTestWindow(2, time.Minute)

	fw.Allow("client-a")
	fw.Allow("client-a")
	allowed, _ := fw.Allow("client-a")
	require.False(t, allowed)

	*clock = clock.Add(time.Minute)

	allowed, info := fw.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, 1, info.Remaining)
}

func TestFixedWindowRetryAfterShrinks(t *testing.T) {
	fw, clock := newTestWindow(1, time.Minute)

	fw.Allow("client-a")
	*clock = clock.Add(40 * time.Second)

	allowed, info := fw.Allow("client-a")
	require.False(t, allowed)
	assert.Equal(t, 20*time.Second, info.RetryAfter)
}

func TestFixedWindowSweepsExpiredKeys(t *testing.T) {
	fw, clock := newTestWindow(5, time.Minute)

	for i := 0; i < 100; i++ {
		fw.Allow(fmt.Sprintf("client-%d", i))
	}
	require.Len(t, fw.windows, 100)

	*clock = clock.Add(2 * time.Minute)
	fw.Allow("client-new")

	assert.Len(t, fw.windows, 1, "expired windows are swept")
}

func TestFixedWindowConcurrentAccess(t *testing.T) {
	fw := NewFixedWindow(1000, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 40; j++ {
				if allowed, _ := fw.Allow("shared"); allowed {
					mu.Lock()
					allowedCount++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, allowedCount, "exactly limit requests pass under contention")
}

func TestUnlimitedNeverRejects(t *testing.T) {
	var l Limiter = Unlimited{}
	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("anyone")
		require.True(t, allowed)
	}
}
