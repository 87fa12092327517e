package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/docent/internal/store"
)

// NewProvider creates a Provider from configuration.
// The returned provider is wrapped, innermost first, with a per-call
// timeout, the process-wide minimum-interval gate, and event logging:
//
//	caller → logging → gate → timeout → base
//
// Retries are deliberately not part of the chain. Callers that want
// retry-with-backoff wrap the result with WithRetry themselves.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	timed := WithTimeout(base, cfg.Timeout)
	gated := WithGate(timed, cfg.MinInterval)
	logged := WithLogging(gated, eventRepo)

	return logged, nil
}

// NewProviderFromEnv builds the provider chain from environment
// configuration. When DOCENT_LLM_PROVIDER is unset and the configured
// default has no key, it probes the standard API key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OPENROUTER_API_KEY) and uses the first provider found.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if os.Getenv("DOCENT_LLM_PROVIDER") != "" {
			return nil, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
