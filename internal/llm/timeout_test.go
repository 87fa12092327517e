package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for its context to expire before returning.
type blockingProvider struct{}

func (b *blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_FastCallPassesThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, 1*time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_SlowCallReturnsErrTimeout(t *testing.T) {
	p := WithTimeout(&blockingProvider{}, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var timeout *ErrTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrTimeout, got %T: %v", err, err)
	}
	if timeout.After != 10*time.Millisecond {
		t.Fatalf("expected After=10ms, got %s", timeout.After)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("ErrTimeout should unwrap to context.DeadlineExceeded")
	}
}

func TestTimeout_CallerCancellationIsNotATimeout(t *testing.T) {
	p := WithTimeout(&blockingProvider{}, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var timeout *ErrTimeout
	if errors.As(err, &timeout) {
		t.Fatal("caller cancellation must not be reported as ErrTimeout")
	}
}

func TestTimeout_RetryTreatsTimeoutAsTransient(t *testing.T) {
	// A timed-out attempt should be retried when the caller opts in.
	calls := 0
	p := WithRetry(providerFunc(func(ctx context.Context, req Request) (*Response, error) {
		calls++
		if calls == 1 {
			return nil, &ErrTimeout{After: time.Second, Err: context.DeadlineExceeded}
		}
		return &Response{Content: json.RawMessage(`{"ok":true}`), StopReason: "end"}, nil
	}), retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestTimeout_ZeroIsPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unwrapped")
	}
}

// providerFunc adapts a function to the Provider interface for tests.
type providerFunc func(ctx context.Context, req Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
