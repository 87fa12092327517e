package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evaluation stores the graded result of a submitted answer.
type Evaluation struct {
	ent.Schema
}

func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Immutable().
			Comment("Document the answer was graded against"),
		field.String("question_id").
			Default("").
			Immutable().
			Comment("Challenge question this grades, empty for free-form answers"),
		field.Text("question").
			Comment("The question that was answered"),
		field.Text("user_answer").
			Comment("The answer the user submitted"),
		field.Text("correct_answer").
			Comment("The known correct answer"),
		field.Int("score").
			Comment("Grade from 0 to 100"),
		field.Bool("correct").
			Comment("Whether the score reached the pass threshold"),
		field.Text("feedback").
			Comment("Why the answer earned its score"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("question_id"),
	}
}
