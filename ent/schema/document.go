package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document records an ingested document and its extraction metadata.
type Document struct {
	ent.Schema
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Unique().
			Immutable().
			Comment("External identifier shared by all dependent tables"),
		field.String("filename").
			Comment("Original filename as uploaded"),
		field.String("format").
			Comment("Source format: txt, md, pdf, docx"),
		field.String("status").
			Comment("Extraction status: success or partial"),
		field.Text("content").
			Default("").
			Comment("Full extracted text"),
		field.Text("preview").
			Default("").
			Comment("First few thousand characters of extracted text"),
		field.Text("summary").
			Default("").
			Comment("Model-written summary, empty until generated"),
		field.Int("chunk_count").
			Default(0),
		field.Int64("file_size").
			Default(0).
			Comment("Size of the source file in bytes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
