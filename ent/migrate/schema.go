// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengeQuestionsColumns holds the columns for the "challenge_questions" table.
	ChallengeQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "source_locators", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChallengeQuestionsTable holds the schema information for the "challenge_questions" table.
	ChallengeQuestionsTable = &schema.Table{
		Name:       "challenge_questions",
		Columns:    ChallengeQuestionsColumns,
		PrimaryKey: []*schema.Column{ChallengeQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengequestion_document_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeQuestionsColumns[2]},
			},
		},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "start_offset", Type: field.TypeInt},
		{Name: "end_offset", Type: field.TypeInt},
		{Name: "locator", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_document_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[1]},
			},
			{
				Name:    "chunk_document_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{ChunksColumns[1], ChunksColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "preview", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "user_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_document_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[1]},
			},
			{
				Name:    "evaluation_question_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionHistoriesColumns holds the columns for the "question_histories" table.
	QuestionHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeString, Default: "freeform"},
		{Name: "citations", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "found", Type: field.TypeBool, Default: true},
		{Name: "response_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionHistoriesTable holds the schema information for the "question_histories" table.
	QuestionHistoriesTable = &schema.Table{
		Name:       "question_histories",
		Columns:    QuestionHistoriesColumns,
		PrimaryKey: []*schema.Column{QuestionHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionhistory_document_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionHistoriesColumns[1]},
			},
			{
				Name:    "questionhistory_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionHistoriesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengeQuestionsTable,
		ChunksTable,
		DocumentsTable,
		EvaluationsTable,
		LlmRequestEventsTable,
		QuestionHistoriesTable,
	}
)

func init() {
}
