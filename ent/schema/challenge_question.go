package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeQuestion stores a generated multiple-choice question so it
// can be answered and graded later. Immutable once created.
type ChallengeQuestion struct {
	ent.Schema
}

func (ChallengeQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			Immutable().
			Comment("External identifier used when submitting answers"),
		field.String("document_id").
			Immutable().
			Comment("Document the question was generated from"),
		field.Text("question").
			Comment("The question prompt"),
		field.Strings("options").
			Comment("Exactly 4 answer options in display order"),
		field.String("answer").
			Comment("The text of the correct option"),
		field.Text("explanation").
			Comment("Why the correct option is right"),
		field.String("difficulty").
			Comment("easy, medium, or hard"),
		field.Strings("source_locators").
			Comment("Chunk locators that support the correct answer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChallengeQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
