package assistant

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/retrieval"
	"github.com/abhisek/docent/internal/store"
)

// Ingest extracts, chunks and stores the document at path, then writes a
// short summary. A summary failure does not fail the upload: the document
// is stored without one and a warning is logged.
func (a *Assistant) Ingest(ctx context.Context, path string) (*store.Document, error) {
	res, err := a.extractor.Extract(path)
	if err != nil {
		return nil, err
	}

	cfg := a.cfg.Chunker
	cfg.PageOffsets = res.PageOffsets
	chunks, err := chunker.Split(res.Text, cfg)
	if err != nil {
		return nil, fmt.Errorf("chunk document: %w", err)
	}

	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}

	doc := &store.Document{
		ID:         uuid.NewString(),
		Filename:   filepath.Base(path),
		Format:     strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Status:     string(res.Status),
		Content:    res.Text,
		Preview:    chunker.Preview(res.Text, a.cfg.PreviewChars),
		ChunkCount: len(chunks),
		FileSize:   size,
	}

	if err := a.stores.Documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := a.stores.Chunks.ReplaceAll(ctx, doc.ID, toStoreChunks(doc.ID, chunks)); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}

	a.mu.Lock()
	a.chunkCache[doc.ID] = chunks
	a.mu.Unlock()

	a.indexVectors(ctx, doc.ID, chunks)

	if a.provider == nil {
		log.Debug().Str("document", doc.ID).Msg("no LLM provider, document stored without a summary")
	} else if text, err := a.summarizer.Summarize(ctx, res.Text); err != nil {
		log.Warn().Err(err).Str("document", doc.ID).Msg("summary unavailable, document stored without one")
	} else if err := a.stores.Documents.SetSummary(ctx, doc.ID, text); err != nil {
		log.Warn().Err(err).Str("document", doc.ID).Msg("failed to store summary")
	} else {
		doc.Summary = text
	}

	log.Debug().
		Str("document", doc.ID).
		Str("file", doc.Filename).
		Int("chunks", len(chunks)).
		Str("status", doc.Status).
		Msg("document ingested")

	return doc, nil
}

// indexVectors populates the document's vector collection when semantic
// retrieval is configured. Failure falls back to keyword retrieval.
func (a *Assistant) indexVectors(ctx context.Context, documentID string, chunks []chunker.Chunk) {
	if a.cfg.Vectors == nil {
		return
	}
	col, err := a.cfg.Vectors.GetOrCreateCollection(retrieval.CollectionName(documentID), nil, a.cfg.Embedding)
	if err == nil {
		err = retrieval.IndexChunks(ctx, col, chunks)
	}
	if err != nil {
		log.Warn().Err(err).Str("document", documentID).Msg("semantic index unavailable, keyword retrieval will be used")
	}
}

// Summarize regenerates and stores the summary for a document. Unlike the
// automatic summary at upload, a failure here is returned to the caller.
func (a *Assistant) Summarize(ctx context.Context, documentID string) (string, error) {
	doc, err := a.Document(ctx, documentID)
	if err != nil {
		return "", err
	}

	text, err := a.summarizer.Summarize(ctx, doc.Content)
	if err != nil {
		return "", err
	}
	if err := a.stores.Documents.SetSummary(ctx, documentID, text); err != nil {
		return "", fmt.Errorf("store summary: %w", err)
	}
	return text, nil
}
