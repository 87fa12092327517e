package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Attribution headers OpenRouter uses to credit traffic in its rankings.
const (
	openRouterReferer = "https://github.com/abhisek/docent"
	openRouterTitle   = "docent"
)

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Transport: &attributionTransport{}},
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds the app attribution headers to every request.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
