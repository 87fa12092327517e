package llm

import (
	"context"
	"errors"
	"time"
)

// TimeoutProvider is a decorator that bounds each call with its own
// deadline. A call that overruns returns *ErrTimeout; the caller's own
// context errors pass through untouched.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline.
// A non-positive timeout returns the provider unwrapped.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(callCtx, req)
	if err == nil {
		return resp, nil
	}

	// Only report a timeout when it was this decorator's deadline that
	// expired, not the caller's.
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, &ErrTimeout{After: t.timeout, Err: err}
	}
	return nil, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
