package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose label ("" = all)
}

// Document is a stored document record.
type Document struct {
	ID         string // external identifier, shared by dependent records
	Filename   string
	Format     string // txt, md, pdf, docx
	Status     string // extraction status: success or partial
	Content    string // full extracted text
	Preview    string
	Summary    string
	ChunkCount int
	FileSize   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DocumentRepo manages document records.
type DocumentRepo interface {
	// Create stores a new document.
	Create(ctx context.Context, doc *Document) error

	// Get returns the document with the given ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]Document, error)

	// SetSummary replaces the stored summary for a document.
	SetSummary(ctx context.Context, id, summary string) error

	// Delete removes a document and every dependent record: chunks,
	// challenge questions, evaluations and question history.
	Delete(ctx context.Context, id string) error
}

// Chunk is a stored slice of a document's extracted text.
type Chunk struct {
	DocumentID string
	Index      int
	Start      int
	End        int
	Locator    string
	Text       string
}

// ChunkRepo manages the chunks belonging to documents.
type ChunkRepo interface {
	// ReplaceAll atomically replaces the chunk set of a document.
	ReplaceAll(ctx context.Context, documentID string, chunks []Chunk) error

	// ListByDocument returns a document's chunks ordered by index.
	ListByDocument(ctx context.Context, documentID string) ([]Chunk, error)
}

// ChallengeQuestion is a stored generated quiz question.
type ChallengeQuestion struct {
	ID             string
	DocumentID     string
	Question       string
	Options        []string
	Answer         string
	Explanation    string
	Difficulty     string
	SourceLocators []string
	CreatedAt      time.Time
}

// ChallengeRepo manages generated challenge questions.
type ChallengeRepo interface {
	// CreateBatch stores a batch of questions in one insert.
	CreateBatch(ctx context.Context, questions []ChallengeQuestion) error

	// Get returns the question with the given ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*ChallengeQuestion, error)

	// ListByDocument returns a document's questions in creation order.
	ListByDocument(ctx context.Context, documentID string) ([]ChallengeQuestion, error)
}

// Evaluation is a stored grading of a submitted answer.
type Evaluation struct {
	ID            int
	DocumentID    string
	QuestionID    string // empty for free-form answers
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Score         int
	Correct       bool
	Feedback      string
	CreatedAt     time.Time
}

// EvaluationRepo manages answer evaluations.
type EvaluationRepo interface {
	// Create stores a new evaluation.
	Create(ctx context.Context, ev *Evaluation) error

	// ListByDocument returns a document's evaluations, newest first.
	ListByDocument(ctx context.Context, documentID string) ([]Evaluation, error)
}

// HistoryEntry is one line of a document's question log.
type HistoryEntry struct {
	ID             int
	DocumentID     string
	Question       string
	Answer         string
	Type           string // freeform or challenge
	Citations      []string
	Confidence     float64
	Found          bool
	ResponseTimeMs int64
	CreatedAt      time.Time
}

// HistoryRepo manages per-document question history.
type HistoryRepo interface {
	// Append adds an entry to a document's history.
	Append(ctx context.Context, entry *HistoryEntry) error

	// ListByDocument returns a document's history, newest first,
	// at most limit entries (0 = unlimited).
	ListByDocument(ctx context.Context, documentID string, limit int) ([]HistoryEntry, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
// The json tags match the column names ent's GroupBy scanner emits.
type PurposeUsage struct {
	Purpose      string  `json:"purpose"`
	Calls        int     `json:"count"`
	InputTokens  int     `json:"sum_input_tokens"`
	OutputTokens int     `json:"sum_output_tokens"`
	AvgLatencyMs float64 `json:"mean_latency_ms"`
}

// ModelUsage aggregates LLM usage for one model ID.
type ModelUsage struct {
	Model        string `json:"model"`
	Calls        int    `json:"count"`
	InputTokens  int    `json:"sum_input_tokens"`
	OutputTokens int    `json:"sum_output_tokens"`
}

// EventRepo provides append and query access to the LLM request log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates call counts, token totals and mean
	// latency per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates call counts and token totals per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
