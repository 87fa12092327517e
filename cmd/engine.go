package cmd

import (
	"os"
	"path/filepath"
	"strconv"

	chromem "github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/store"
)

// newLLMProvider builds the provider chain from the environment. The
// engine itself never retries; retry-with-backoff is opted into here,
// via --llm-retries or DOCENT_LLM_RETRIES.
func newLLMProvider(cmd *cobra.Command, s *store.Store) (llm.Provider, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), s.EventRepo())
	if err != nil {
		return nil, err
	}

	retries, _ := cmd.Flags().GetInt("llm-retries")
	if retries <= 0 {
		if v := os.Getenv("DOCENT_LLM_RETRIES"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				retries = n
			}
		}
	}
	if retries <= 0 {
		return provider, nil
	}

	cfg := llm.DefaultConfig().Retry
	cfg.MaxAttempts = retries + 1
	return llm.WithRetry(provider, cfg), nil
}

// engineConfig builds the assistant configuration. Semantic retrieval
// turns on when an embeddings key is available: chunks and queries are
// embedded via the OpenAI embeddings API and stored in a chromem
// database next to the SQLite file. Without a key the engine uses the
// keyword scorer.
func engineConfig(dbPath string) assistant.Config {
	cfg := assistant.DefaultConfig()

	key := os.Getenv("DOCENT_EMBEDDINGS_API_KEY")
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return cfg
	}

	db, err := chromem.NewPersistentDB(filepath.Join(filepath.Dir(dbPath), "vectors"), false)
	if err != nil {
		log.Warn().Err(err).Msg("vector store unavailable, keyword retrieval will be used")
		return cfg
	}
	cfg.Vectors = db
	cfg.Embedding = chromem.NewEmbeddingFuncOpenAI(key, chromem.EmbeddingModelOpenAI3Small)
	return cfg
}
