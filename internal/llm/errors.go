package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/api/googleapi"
)

// ErrUnavailable is the terminal failure surfaced after the retry
// budget is exhausted. Callers map it to a generic "please try again"
// response; it never carries partial content.
var ErrUnavailable = errors.New("generation service unavailable")

// failureClass buckets an error for retry-policy purposes.
type failureClass int

const (
	// classTerminal errors are returned immediately without retry.
	classTerminal failureClass = iota
	// classRateLimited errors back off exponentially.
	classRateLimited
	// classServerError errors back off a fixed interval.
	classServerError
	// classTransport errors back off a fixed interval and are
	// re-thrown only after the final attempt.
	classTransport
)

// classify maps an error from the generation service to its retry class.
func classify(err error) failureClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return classTerminal
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return classRateLimited
		case apiErr.Code >= 500:
			return classServerError
		default:
			return classTerminal
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return classTransport
	}

	// Errors without a status code are treated as transport faults:
	// the service never got a chance to answer.
	return classTransport
}

// unavailable wraps a cause into the terminal ErrUnavailable failure.
func unavailable(attempts int, cause error) error {
	return fmt.Errorf("%w after %d attempts: %w", ErrUnavailable, attempts, cause)
}
