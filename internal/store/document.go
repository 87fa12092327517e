package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/challengequestion"
	"github.com/abhisek/docent/ent/chunk"
	"github.com/abhisek/docent/ent/document"
	"github.com/abhisek/docent/ent/evaluation"
	"github.com/abhisek/docent/ent/questionhistory"
)

// documentRepo implements DocumentRepo using the ent client.
type documentRepo struct {
	client *ent.Client
}

func (r *documentRepo) Create(ctx context.Context, doc *Document) error {
	_, err := r.client.Document.Create().
		SetDocumentID(doc.ID).
		SetFilename(doc.Filename).
		SetFormat(doc.Format).
		SetStatus(doc.Status).
		SetContent(doc.Content).
		SetPreview(doc.Preview).
		SetSummary(doc.Summary).
		SetChunkCount(doc.ChunkCount).
		SetFileSize(doc.FileSize).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *documentRepo) Get(ctx context.Context, id string) (*Document, error) {
	d, err := r.client.Document.Query().
		Where(document.DocumentID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query document: %w", err)
	}
	return entDocumentToDocument(d), nil
}

func (r *documentRepo) List(ctx context.Context) ([]Document, error) {
	docs, err := r.client.Document.Query().
		Order(ent.Desc(document.FieldCreatedAt, document.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	records := make([]Document, len(docs))
	for i, d := range docs {
		records[i] = *entDocumentToDocument(d)
	}
	return records, nil
}

func (r *documentRepo) SetSummary(ctx context.Context, id, summary string) error {
	n, err := r.client.Document.Update().
		Where(document.DocumentID(id)).
		SetSummary(summary).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %s not found", id)
	}
	return nil
}

// Delete removes the document and its dependent records one table at a
// time. SQLite gives per-statement atomicity only, so a crash mid-way can
// leave orphans; each delete is idempotent and a retry finishes the job.
func (r *documentRepo) Delete(ctx context.Context, id string) error {
	exists, err := r.client.Document.Query().
		Where(document.DocumentID(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query document: %w", err)
	}
	if !exists {
		return fmt.Errorf("document %s not found", id)
	}

	if _, err := r.client.Chunk.Delete().
		Where(chunk.DocumentID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	if _, err := r.client.ChallengeQuestion.Delete().
		Where(challengequestion.DocumentID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete challenge questions: %w", err)
	}
	if _, err := r.client.Evaluation.Delete().
		Where(evaluation.DocumentID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete evaluations: %w", err)
	}
	if _, err := r.client.QuestionHistory.Delete().
		Where(questionhistory.DocumentID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete question history: %w", err)
	}
	if _, err := r.client.Document.Delete().
		Where(document.DocumentID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// entDocumentToDocument converts an ent Document to a store Document.
func entDocumentToDocument(d *ent.Document) *Document {
	return &Document{
		ID:         d.DocumentID,
		Filename:   d.Filename,
		Format:     d.Format,
		Status:     d.Status,
		Content:    d.Content,
		Preview:    d.Preview,
		Summary:    d.Summary,
		ChunkCount: d.ChunkCount,
		FileSize:   d.FileSize,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
