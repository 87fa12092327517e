// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChallengeQuestion is the predicate function for challengequestion builders.
type ChallengeQuestion func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionHistory is the predicate function for questionhistory builders.
type QuestionHistory func(*sql.Selector)
