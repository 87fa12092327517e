package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionHistory records every question asked of a document, both
// free-form and challenge, so past exchanges can be reviewed.
type QuestionHistory struct {
	ent.Schema
}

func (QuestionHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Immutable().
			Comment("Document the question was asked about"),
		field.Text("question").
			Comment("The question as asked"),
		field.Text("answer").
			Comment("The answer that was given"),
		field.String("question_type").
			Default("freeform").
			Comment("freeform or challenge"),
		field.Strings("citations").
			Optional().
			Comment("Chunk locators the answer cited"),
		field.Float("confidence").
			Default(0).
			Comment("Heuristic answer confidence in [0,1]"),
		field.Bool("found").
			Default(true).
			Comment("Whether the document contained the information"),
		field.Int64("response_time_ms").
			Default(0).
			Comment("Wall-clock time to produce the answer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("created_at"),
	}
}
