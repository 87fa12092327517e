package challenge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/docent/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// questionOutput is one raw question from the LLM before validation.
type questionOutput struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Answer         string   `json:"answer"`
	Explanation    string   `json:"explanation"`
	SourceLocators []string `json:"source_locators"`
}

// batchOutput is the raw LLM response for one round.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces Count validated, deduplicated questions. Dropped
// questions are regenerated in extra rounds up to Config.MaxRounds;
// if the batch is still short after that, the questions produced so far
// are returned alongside an *InsufficientContentError.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]Question, error) {
	if err := g.validateInput(input); err != nil {
		return nil, err
	}
	if len(input.Chunks) < g.cfg.MinChunks {
		return nil, &InsufficientContentError{
			Requested: input.Count,
			Generated: 0,
			Reason:    fmt.Sprintf("document has %d chunks, need at least %d to be suitable for questions", len(input.Chunks), g.cfg.MinChunks),
		}
	}

	ctx = llm.WithPurpose(ctx, "challenge-gen")

	var accepted []Question
	var priorTexts []string

	rounds := 1 + g.cfg.MaxRounds
	for round := 0; round < rounds && len(accepted) < input.Count; round++ {
		need := input.Count - len(accepted)

		batch, err := g.requestBatch(ctx, input, need, priorTexts)
		if err != nil {
			return nil, err
		}

		for i := range batch {
			if len(accepted) >= input.Count {
				break
			}
			q := &batch[i]
			q.Difficulty = input.Difficulty

			if verr := g.validate(q, input); verr != nil {
				log.Debug().Str("validator", verr.Validator).Str("reason", verr.Message).
					Msg("challenge question dropped")
				continue
			}
			if isDuplicate(q.Text, priorTexts, g.cfg.DupThreshold) {
				log.Debug().Str("question", q.Text).Msg("near-duplicate question dropped")
				continue
			}

			accepted = append(accepted, *q)
			priorTexts = append(priorTexts, q.Text)
		}
	}

	if len(accepted) < input.Count {
		return accepted, &InsufficientContentError{
			Requested: input.Count,
			Generated: len(accepted),
			Reason:    "could not produce enough distinct valid questions from the document",
		}
	}
	return accepted, nil
}

func (g *LLMGenerator) validateInput(input Input) error {
	if input.Count < 1 || input.Count > g.cfg.MaxCount {
		return &RequestError{
			Field:  "count",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", g.cfg.MaxCount, input.Count),
		}
	}
	if !input.Difficulty.Valid() {
		return &RequestError{
			Field:  "difficulty",
			Reason: fmt.Sprintf("must be easy, medium, or hard, got %q", input.Difficulty),
		}
	}
	return nil
}

// requestBatch performs one LLM round asking for need questions.
func (g *LLMGenerator) requestBatch(ctx context.Context, input Input, need int, prior []string) ([]Question, error) {
	req := llm.Request{
		System: challengeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChallengeMessage(input, need, prior, g.cfg)},
		},
		Schema:      ChallengeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Document: input.DocumentID, Stage: "generate", Err: err}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Document: input.DocumentID, Stage: "parse", Err: err}
	}

	out := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		out = append(out, Question{
			Text:           rq.Question,
			Options:        rq.Options,
			Answer:         rq.Answer,
			Explanation:    rq.Explanation,
			SourceLocators: rq.SourceLocators,
		})
	}
	return out, nil
}

func (g *LLMGenerator) validate(q *Question, input Input) *ValidationError {
	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
