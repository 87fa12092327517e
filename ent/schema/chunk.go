package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chunk stores one contiguous slice of a document's extracted text.
// Chunks are written once when a document is ingested and read-only
// afterwards.
type Chunk struct {
	ent.Schema
}

func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Immutable().
			Comment("Owning document"),
		field.Int("chunk_index").
			Immutable().
			Comment("Position of this chunk in the document's sequence"),
		field.Int("start_offset").
			Comment("Byte offset where the chunk starts in the extracted text"),
		field.Int("end_offset").
			Comment("Byte offset one past the chunk's last byte"),
		field.String("locator").
			Comment("Human-readable position, e.g. \"Paragraph 3\" or \"Page 2, Paragraph 1\""),
		field.Text("text").
			Comment("The chunk's text content"),
	}
}

func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("document_id", "chunk_index").Unique(),
	}
}
