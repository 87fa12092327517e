package qa

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/retrieval"
)

// Config controls the behavior of the Answerer.
type Config struct {
	// TopK is the number of chunks retrieved as answer context.
	TopK int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness. Kept low so answers
	// stay close to the source text.
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		TopK:        retrieval.DefaultTopK,
		MaxTokens:   1024,
		Temperature: 0.1,
	}
}

// Answerer produces answers grounded in a document's chunks.
type Answerer struct {
	provider llm.Provider
	selector retrieval.Selector
	cfg      Config
}

// NewAnswerer creates an Answerer with the given provider and selector.
func NewAnswerer(provider llm.Provider, selector retrieval.Selector, cfg Config) *Answerer {
	return &Answerer{provider: provider, selector: selector, cfg: cfg}
}

// answerOutput is the raw LLM response before post-processing.
type answerOutput struct {
	Answer string `json:"answer"`
	Cited  []int  `json:"cited"`
	Found  bool   `json:"found"`
}

// Answer responds to a question using only the document's chunks. The
// top-K most relevant chunks are fed to the LLM as labeled excerpts;
// the response is post-checked so that every citation maps back to a
// real chunk locator.
func (a *Answerer) Answer(ctx context.Context, input Input) (*Answer, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, ErrEmptyQuestion
	}
	if len(input.Chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	ctx = llm.WithPurpose(ctx, "grounded-answer")

	selected, err := a.selector.Select(ctx, input.Question, input.Chunks, a.cfg.TopK)
	if err != nil {
		return nil, &GenerationError{Document: input.DocumentID, Stage: "select", Err: err}
	}

	req := llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerMessage(input.Question, selected)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Document: input.DocumentID, Stage: "generate", Err: err}
	}

	var raw answerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Document: input.DocumentID, Stage: "parse", Err: err}
	}

	citations := citedLocators(raw.Cited, selected)
	if raw.Found && len(citations) == 0 {
		// The model answered without self-citing. Attribute the answer
		// to everything it was shown.
		citations = allLocators(selected)
	}

	return &Answer{
		Text:       raw.Answer,
		Citations:  citations,
		Confidence: confidence(selected, len(citations), raw.Found),
		Found:      raw.Found,
	}, nil
}
