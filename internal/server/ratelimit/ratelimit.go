// Package ratelimit provides per-client request rate limiting using a
// fixed window counter.
package ratelimit

import (
	"sync"
	"time"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
// Implementations must be safe for concurrent use. The key is an
// opaque client identifier; callers choose its granularity.
type Limiter interface {
	Allow(key string) (bool, Info)
}

// Unlimited is a Limiter that never rejects. Used when rate limiting
// is disabled.
type Unlimited struct{}

// Allow always permits the request.
func (Unlimited) Allow(string) (bool, Info) {
	return true, Info{Allowed: true}
}

type windowState struct {
	start time.Time
	count int
}

// FixedWindow is an in-process fixed-window Limiter: each key gets up
// to limit requests per window, counted from the first request of the
// window. Expired windows are swept opportunistically on Allow calls,
// so idle keys do not accumulate forever.
type FixedWindow struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	windows   map[string]*windowState
	lastSweep time.Time

	now func() time.Time
}

// NewFixedWindow creates a fixed-window limiter allowing limit
// requests per window for each key.
func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  window,
		windows: make(map[string]*windowState),
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it fits in the
// current window.
func (fw *FixedWindow) Allow(key string) (bool, Info) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := fw.now()
	fw.sweepLocked(now)

	state, ok := fw.windows[key]
	if !ok || now.Sub(state.start) >= fw.window {
		state = &windowState{start: now}
		fw.windows[key] = state
	}

	resetTime := state.start.Add(fw.window)
	if state.count >= fw.limit {
		retryAfter := resetTime.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, Info{
			Allowed:    false,
			Limit:      fw.limit,
			Remaining:  0,
			ResetTime:  resetTime,
			RetryAfter: retryAfter,
		}
	}

	state.count++
	return true, Info{
		Allowed:   true,
		Limit:     fw.limit,
		Remaining: fw.limit - state.count,
		ResetTime: resetTime,
	}
}

// sweepLocked drops windows that expired before the current one
// started. Runs at most once per window duration.
func (fw *FixedWindow) sweepLocked(now time.Time) {
	if now.Sub(fw.lastSweep) < fw.window {
		return
	}
	fw.lastSweep = now
	for key, state := range fw.windows {
		if now.Sub(state.start) >= fw.window {
			delete(fw.windows, key)
		}
	}
}
