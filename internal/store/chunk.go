package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/chunk"
)

// chunkRepo implements ChunkRepo using the ent client.
type chunkRepo struct {
	client *ent.Client
}

func (r *chunkRepo) ReplaceAll(ctx context.Context, documentID string, chunks []Chunk) error {
	_, err := r.client.Chunk.Delete().
		Where(chunk.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear chunks: %w", err)
	}

	if len(chunks) == 0 {
		return nil
	}

	builders := make([]*ent.ChunkCreate, len(chunks))
	for i, c := range chunks {
		builders[i] = r.client.Chunk.Create().
			SetDocumentID(documentID).
			SetChunkIndex(c.Index).
			SetStartOffset(c.Start).
			SetEndOffset(c.End).
			SetLocator(c.Locator).
			SetText(c.Text)
	}
	if _, err := r.client.Chunk.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save chunks: %w", err)
	}
	return nil
}

func (r *chunkRepo) ListByDocument(ctx context.Context, documentID string) ([]Chunk, error) {
	rows, err := r.client.Chunk.Query().
		Where(chunk.DocumentID(documentID)).
		Order(ent.Asc(chunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	records := make([]Chunk, len(rows))
	for i, c := range rows {
		records[i] = Chunk{
			DocumentID: c.DocumentID,
			Index:      c.ChunkIndex,
			Start:      c.StartOffset,
			End:        c.EndOffset,
			Locator:    c.Locator,
			Text:       c.Text,
		}
	}
	return records, nil
}
