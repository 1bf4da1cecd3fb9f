package llm

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Retry policy defaults: 1 initial attempt plus 3 retries, starting
// from a 1s backoff. Rate-limit responses double the backoff each
// attempt (1s, 2s, 4s); server and transport faults wait a fixed 1s.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 1000 * time.Millisecond
)

var retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "llm_generate_retries_total",
	Help: "Generation call retries by failure class.",
}, []string{"reason"})

// RetryClient decorates a Client with the bounded retry/backoff policy.
// It holds no mutable state across calls and is safe for concurrent use.
type RetryClient struct {
	inner      Client
	maxRetries int
	baseDelay  time.Duration

	// sleep is swapped out in tests to avoid real waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryClient wraps a client with the default retry policy.
func NewRetryClient(inner Client) *RetryClient {
	return &RetryClient{
		inner:      inner,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		sleep:      sleepCtx,
	}
}

// GenerateContent issues the request, retrying transient failures.
// Rate limits back off exponentially from the base delay; server and
// transport faults wait the fixed base delay. Non-transient errors
// propagate immediately. After the final attempt the last error is
// wrapped into ErrUnavailable.
func (c *RetryClient) GenerateContent(ctx context.Context, task Task, prompt string, opts Options) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, err := c.inner.GenerateContent(ctx, task, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		var delay time.Duration
		switch classify(err) {
		case classRateLimited:
			delay = c.baseDelay << attempt
			retriesTotal.WithLabelValues("rate_limited").Inc()
		case classServerError:
			delay = c.baseDelay
			retriesTotal.WithLabelValues("server_error").Inc()
		case classTransport:
			delay = c.baseDelay
			retriesTotal.WithLabelValues("transport").Inc()
		default:
			return "", err
		}

		if attempt == c.maxRetries {
			break
		}

		log.Printf("generation attempt %d/%d failed (%v), retrying in %s", attempt+1, c.maxRetries+1, err, delay)
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return "", sleepErr
		}
	}

	return "", unavailable(c.maxRetries+1, lastErr)
}

// Close closes the wrapped client.
func (c *RetryClient) Close() error {
	return c.inner.Close()
}

// sleepCtx waits for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
