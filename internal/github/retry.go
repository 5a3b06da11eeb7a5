package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const maxRetries = 5

// withRetry calls fn until it succeeds, fails with something other than a
// rate limit, or runs out of attempts. It waits for the rate limit reset when
// GitHub reports one and backs off exponentially otherwise.
func withRetry[T any](ctx context.Context, baseDelay time.Duration, fn func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		v, resp, err := fn()
		if err == nil {
			return v, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			return zero, nil, err
		}

		if attempt == maxRetries {
			return zero, nil, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}
