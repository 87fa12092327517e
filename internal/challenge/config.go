package challenge

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. Questions failing any validator are dropped
	// from the batch and regenerated in a later round.
	Validators []Validator

	// MaxCount is the largest batch a caller may request.
	MaxCount int

	// MinChunks is the minimum number of chunks a document needs to be
	// worth generating questions from.
	MinChunks int

	// DupThreshold is the token-set similarity above which two question
	// texts count as near-duplicates.
	DupThreshold float64

	// MaxRounds is the number of extra regeneration rounds allowed to
	// fill a batch after drops.
	MaxRounds int

	// MaxContentChars bounds how much chunk text goes into the prompt.
	MaxContentChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness. Kept high so batches
	// vary between runs.
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ParallelOptionsValidator{},
			&SourceLocatorValidator{},
		},
		MaxCount:        10,
		MinChunks:       3,
		DupThreshold:    0.8,
		MaxRounds:       2,
		MaxContentChars: 6000,
		MaxTokens:       2048,
		Temperature:     0.7,
	}
}
