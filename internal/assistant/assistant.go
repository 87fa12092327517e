package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	chromem "github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/docent/internal/challenge"
	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/evaluate"
	"github.com/abhisek/docent/internal/extract"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/qa"
	"github.com/abhisek/docent/internal/retrieval"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/summary"
)

var (
	// ErrDocumentNotFound is returned when a document ID is unknown.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrQuestionNotFound is returned when a challenge question ID is unknown.
	ErrQuestionNotFound = errors.New("challenge question not found")
)

// Config bundles the engine settings for every stage.
type Config struct {
	Chunker   chunker.Config
	QA        qa.Config
	Challenge challenge.Config
	Evaluate  evaluate.Config
	Summary   summary.Config

	// PreviewChars bounds the stored document preview.
	PreviewChars int

	// Vectors, when set, enables semantic retrieval: each ingested
	// document gets a chromem collection, and questions are matched by
	// embedding similarity instead of keyword overlap.
	Vectors *chromem.DB

	// Embedding embeds chunks and queries when Vectors is set. Nil uses
	// chromem's default embedding function.
	Embedding chromem.EmbeddingFunc
}

// DefaultConfig returns the engine defaults for every stage.
func DefaultConfig() Config {
	return Config{
		Chunker:      chunker.DefaultConfig(),
		QA:           qa.DefaultConfig(),
		Challenge:    challenge.DefaultConfig(),
		Evaluate:     evaluate.DefaultConfig(),
		Summary:      summary.DefaultConfig(),
		PreviewChars: 5000,
	}
}

// Stores carries the repositories the assistant persists through.
type Stores struct {
	Documents   store.DocumentRepo
	Chunks      store.ChunkRepo
	Challenges  store.ChallengeRepo
	Evaluations store.EvaluationRepo
	History     store.HistoryRepo
}

// StoresFrom collects the repositories of an open store.
func StoresFrom(s *store.Store) Stores {
	return Stores{
		Documents:   s.DocumentRepo(),
		Chunks:      s.ChunkRepo(),
		Challenges:  s.ChallengeRepo(),
		Evaluations: s.EvaluationRepo(),
		History:     s.HistoryRepo(),
	}
}

// Assistant is the engine facade: it wires extraction, chunking,
// retrieval, generation and persistence behind the operations the CLI
// exposes. Safe for concurrent use.
type Assistant struct {
	provider llm.Provider
	cfg      Config

	extractor  *extract.Extractor
	generator  challenge.Generator
	evaluator  *evaluate.Evaluator
	summarizer *summary.Summarizer
	lexical    retrieval.Selector

	stores Stores

	// chunkCache holds each document's chunks, written once on ingest or
	// first use and read-only afterwards.
	mu         sync.RWMutex
	chunkCache map[string][]chunker.Chunk
}

// New wires an Assistant from a provider, repositories and config.
func New(provider llm.Provider, stores Stores, cfg Config) *Assistant {
	return &Assistant{
		provider:   provider,
		cfg:        cfg,
		extractor:  extract.NewExtractor(),
		generator:  challenge.New(provider, cfg.Challenge),
		evaluator:  evaluate.NewEvaluator(provider, cfg.Evaluate),
		summarizer: summary.NewSummarizer(provider, cfg.Summary),
		lexical:    retrieval.NewLexicalSelector(),
		stores:     stores,
		chunkCache: make(map[string][]chunker.Chunk),
	}
}

// Documents lists all stored documents, newest first.
func (a *Assistant) Documents(ctx context.Context) ([]store.Document, error) {
	return a.stores.Documents.List(ctx)
}

// Document returns a stored document by ID.
func (a *Assistant) Document(ctx context.Context, documentID string) (*store.Document, error) {
	doc, err := a.stores.Documents.Get(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", documentID, ErrDocumentNotFound)
	}
	return doc, nil
}

// DeleteDocument removes a document with everything derived from it:
// chunks, challenge questions, evaluations, history and the vector
// collection when semantic retrieval is on.
func (a *Assistant) DeleteDocument(ctx context.Context, documentID string) error {
	doc, err := a.stores.Documents.Get(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("%s: %w", documentID, ErrDocumentNotFound)
	}

	if err := a.stores.Documents.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	a.mu.Lock()
	delete(a.chunkCache, documentID)
	a.mu.Unlock()

	if a.cfg.Vectors != nil {
		name := retrieval.CollectionName(documentID)
		if err := a.cfg.Vectors.DeleteCollection(name); err != nil {
			log.Warn().Err(err).Str("document", documentID).Msg("failed to drop vector collection")
		}
	}
	return nil
}

// History returns a document's question log, newest first.
func (a *Assistant) History(ctx context.Context, documentID string, limit int) ([]store.HistoryEntry, error) {
	if _, err := a.Document(ctx, documentID); err != nil {
		return nil, err
	}
	return a.stores.History.ListByDocument(ctx, documentID, limit)
}

// Evaluations returns a document's graded answers, newest first.
func (a *Assistant) Evaluations(ctx context.Context, documentID string) ([]store.Evaluation, error) {
	if _, err := a.Document(ctx, documentID); err != nil {
		return nil, err
	}
	return a.stores.Evaluations.ListByDocument(ctx, documentID)
}

// ChallengeQuestions returns a document's stored quiz questions.
func (a *Assistant) ChallengeQuestions(ctx context.Context, documentID string) ([]store.ChallengeQuestion, error) {
	if _, err := a.Document(ctx, documentID); err != nil {
		return nil, err
	}
	return a.stores.Challenges.ListByDocument(ctx, documentID)
}

// documentChunks returns a document's chunks, loading and caching them on
// first use.
func (a *Assistant) documentChunks(ctx context.Context, documentID string) ([]chunker.Chunk, error) {
	a.mu.RLock()
	cached, ok := a.chunkCache[documentID]
	a.mu.RUnlock()
	if ok {
		return cached, nil
	}

	rows, err := a.stores.Chunks.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}
	if len(rows) == 0 {
		doc, err := a.stores.Documents.Get(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("load document: %w", err)
		}
		if doc == nil {
			return nil, fmt.Errorf("%s: %w", documentID, ErrDocumentNotFound)
		}
		return nil, qa.ErrEmptyDocument
	}

	chunks := fromStoreChunks(rows)

	a.mu.Lock()
	if existing, ok := a.chunkCache[documentID]; ok {
		chunks = existing
	} else {
		a.chunkCache[documentID] = chunks
	}
	a.mu.Unlock()

	return chunks, nil
}

// selectorFor picks the retrieval strategy for a document: the document's
// vector collection when one is populated, keyword scoring otherwise.
func (a *Assistant) selectorFor(documentID string) retrieval.Selector {
	if a.cfg.Vectors == nil {
		return a.lexical
	}
	col := a.cfg.Vectors.GetCollection(retrieval.CollectionName(documentID), a.cfg.Embedding)
	if col == nil || col.Count() == 0 {
		return a.lexical
	}
	return retrieval.NewVectorSelector(col)
}

// resolveLocators maps locator strings back to chunks, dropping unknown
// locators and duplicates.
func resolveLocators(chunks []chunker.Chunk, locators []string) []chunker.Chunk {
	var out []chunker.Chunk
	seen := make(map[int]bool)
	for _, loc := range locators {
		c, ok := chunker.FindByLocator(chunks, loc)
		if !ok || seen[c.Index] {
			continue
		}
		seen[c.Index] = true
		out = append(out, c)
	}
	return out
}

func toStoreChunks(documentID string, chunks []chunker.Chunk) []store.Chunk {
	out := make([]store.Chunk, len(chunks))
	for i, c := range chunks {
		out[i] = store.Chunk{
			DocumentID: documentID,
			Index:      c.Index,
			Start:      c.Start,
			End:        c.End,
			Locator:    c.Locator,
			Text:       c.Text,
		}
	}
	return out
}

func fromStoreChunks(rows []store.Chunk) []chunker.Chunk {
	out := make([]chunker.Chunk, len(rows))
	for i, r := range rows {
		out[i] = chunker.Chunk{
			Index:   r.Index,
			Start:   r.Start,
			End:     r.End,
			Locator: r.Locator,
			Text:    r.Text,
		}
	}
	return out
}
