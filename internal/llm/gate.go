package llm

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// GateProvider is a decorator that enforces a minimum interval between
// consecutive calls, process-wide. Hosted LLM APIs on free tiers throttle
// aggressively; spacing calls out avoids tripping them in the first place.
//
// The gate is a serializing resource: callers reserve the next available
// slot under the lock, then sleep outside it, so a slow caller never
// blocks a later caller from computing its own slot.
type GateProvider struct {
	inner    Provider
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

// WithGate wraps a Provider with a minimum-interval gate.
// A non-positive interval returns the provider unwrapped.
func WithGate(p Provider, interval time.Duration) Provider {
	if interval <= 0 {
		return p
	}
	return &GateProvider{inner: p, interval: interval}
}

func (g *GateProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	return g.inner.Generate(ctx, req)
}

func (g *GateProvider) ModelID() string {
	return g.inner.ModelID()
}

// wait reserves the next slot and sleeps until it arrives.
// Returns the context error if the caller gives up first; the reserved
// slot is not released in that case, which keeps the bookkeeping trivial
// and errs on the side of calling less often.
func (g *GateProvider) wait(ctx context.Context) error {
	g.mu.Lock()
	now := time.Now()
	slot := g.next
	if slot.Before(now) {
		slot = now
	}
	g.next = slot.Add(g.interval)
	g.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	log.Debug().Dur("delay", delay).Msg("rate gate: waiting for next slot")

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
