package llm

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestGate_FirstCallPassesImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithGate(mock, 500*time.Millisecond)

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("first call should not wait, took %s", elapsed)
	}
}

func TestGate_SecondCallWaitsOutTheInterval(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	interval := 50 * time.Millisecond
	p := WithGate(mock, interval)

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < interval {
		t.Fatalf("second call returned after %s, want at least %s", elapsed, interval)
	}
}

func TestGate_ConcurrentCallsAreSpaced(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	interval := 30 * time.Millisecond
	p := WithGate(mock, interval)

	start := time.Now()
	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.Generate(context.Background(), Request{})
		}()
	}
	wg.Wait()

	// Three calls through a serializing gate span at least two intervals.
	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Fatalf("three calls finished in %s, want at least %s", elapsed, 2*interval)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestGate_ContextCancelledWhileWaiting(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithGate(mock, 10*time.Second)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Generate(ctx, Request{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("cancelled call must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestGate_ZeroIntervalIsPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithGate(mock, 0); p != Provider(mock) {
		t.Fatal("zero interval should return the provider unwrapped")
	}
}
