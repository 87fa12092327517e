package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/docent/internal/challenge"
	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/extract"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/qa"
	"github.com/abhisek/docent/internal/store"
)

// memDocs is an in-memory DocumentRepo that cascades deletes to its
// dependent fakes, matching the real repo's contract.
type memDocs struct {
	m     map[string]store.Document
	order []string

	chunks    *memChunks
	questions *memQuestions
	evals     *memEvals
	history   *memHistory
}

func (d *memDocs) Create(_ context.Context, doc *store.Document) error {
	d.m[doc.ID] = *doc
	d.order = append(d.order, doc.ID)
	return nil
}

func (d *memDocs) Get(_ context.Context, id string) (*store.Document, error) {
	doc, ok := d.m[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (d *memDocs) List(_ context.Context) ([]store.Document, error) {
	out := make([]store.Document, 0, len(d.order))
	for i := len(d.order) - 1; i >= 0; i-- {
		if doc, ok := d.m[d.order[i]]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (d *memDocs) SetSummary(_ context.Context, id, summary string) error {
	doc, ok := d.m[id]
	if !ok {
		return errors.New("document not found")
	}
	doc.Summary = summary
	d.m[id] = doc
	return nil
}

func (d *memDocs) Delete(_ context.Context, id string) error {
	if _, ok := d.m[id]; !ok {
		return errors.New("document not found")
	}
	delete(d.m, id)
	delete(d.chunks.m, id)
	for qid, q := range d.questions.m {
		if q.DocumentID == id {
			delete(d.questions.m, qid)
		}
	}
	kept := d.evals.list[:0]
	for _, ev := range d.evals.list {
		if ev.DocumentID != id {
			kept = append(kept, ev)
		}
	}
	d.evals.list = kept
	entries := d.history.list[:0]
	for _, entry := range d.history.list {
		if entry.DocumentID != id {
			entries = append(entries, entry)
		}
	}
	d.history.list = entries
	return nil
}

type memChunks struct{ m map[string][]store.Chunk }

func (c *memChunks) ReplaceAll(_ context.Context, documentID string, chunks []store.Chunk) error {
	c.m[documentID] = append([]store.Chunk(nil), chunks...)
	return nil
}

func (c *memChunks) ListByDocument(_ context.Context, documentID string) ([]store.Chunk, error) {
	return c.m[documentID], nil
}

type memQuestions struct {
	m     map[string]store.ChallengeQuestion
	order []string
}

func (q *memQuestions) CreateBatch(_ context.Context, questions []store.ChallengeQuestion) error {
	for _, item := range questions {
		q.m[item.ID] = item
		q.order = append(q.order, item.ID)
	}
	return nil
}

func (q *memQuestions) Get(_ context.Context, id string) (*store.ChallengeQuestion, error) {
	item, ok := q.m[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (q *memQuestions) ListByDocument(_ context.Context, documentID string) ([]store.ChallengeQuestion, error) {
	var out []store.ChallengeQuestion
	for _, id := range q.order {
		if item, ok := q.m[id]; ok && item.DocumentID == documentID {
			out = append(out, item)
		}
	}
	return out, nil
}

type memEvals struct{ list []store.Evaluation }

func (e *memEvals) Create(_ context.Context, ev *store.Evaluation) error {
	e.list = append(e.list, *ev)
	return nil
}

func (e *memEvals) ListByDocument(_ context.Context, documentID string) ([]store.Evaluation, error) {
	var out []store.Evaluation
	for i := len(e.list) - 1; i >= 0; i-- {
		if e.list[i].DocumentID == documentID {
			out = append(out, e.list[i])
		}
	}
	return out, nil
}

type memHistory struct{ list []store.HistoryEntry }

func (h *memHistory) Append(_ context.Context, entry *store.HistoryEntry) error {
	h.list = append(h.list, *entry)
	return nil
}

func (h *memHistory) ListByDocument(_ context.Context, documentID string, limit int) ([]store.HistoryEntry, error) {
	var out []store.HistoryEntry
	for i := len(h.list) - 1; i >= 0; i-- {
		if h.list[i].DocumentID == documentID {
			out = append(out, h.list[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type memory struct {
	docs      *memDocs
	chunks    *memChunks
	questions *memQuestions
	evals     *memEvals
	history   *memHistory
}

func newMemory() *memory {
	chunks := &memChunks{m: make(map[string][]store.Chunk)}
	questions := &memQuestions{m: make(map[string]store.ChallengeQuestion)}
	evals := &memEvals{}
	history := &memHistory{}
	docs := &memDocs{
		m:         make(map[string]store.Document),
		chunks:    chunks,
		questions: questions,
		evals:     evals,
		history:   history,
	}
	return &memory{docs: docs, chunks: chunks, questions: questions, evals: evals, history: history}
}

func (m *memory) stores() Stores {
	return Stores{
		Documents:   m.docs,
		Chunks:      m.chunks,
		Challenges:  m.questions,
		Evaluations: m.evals,
		History:     m.history,
	}
}

// seed installs a ready document with its chunks, as if it had been
// ingested earlier.
func (m *memory) seed(documentID string, chunks []chunker.Chunk) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	m.docs.m[documentID] = store.Document{
		ID:         documentID,
		Filename:   documentID + ".txt",
		Format:     "txt",
		Status:     "success",
		Content:    strings.Join(texts, "\n\n"),
		ChunkCount: len(chunks),
	}
	m.docs.order = append(m.docs.order, documentID)
	m.chunks.m[documentID] = toStoreChunks(documentID, chunks)
}

func docChunks() []chunker.Chunk {
	return []chunker.Chunk{
		{Index: 0, Start: 0, End: 52, Locator: "Paragraph 1", Text: "Photosynthesis converts light into chemical energy."},
		{Index: 1, Start: 52, End: 92, Locator: "Paragraph 2", Text: "Chlorophyll absorbs red and blue light."},
		{Index: 2, Start: 92, End: 134, Locator: "Paragraph 3", Text: "Plants release oxygen during the process."},
		{Index: 3, Start: 134, End: 176, Locator: "Paragraph 4", Text: "Glucose is stored as starch in the roots."},
	}
}

func storedQuestion(id, documentID string) store.ChallengeQuestion {
	return store.ChallengeQuestion{
		ID:             id,
		DocumentID:     documentID,
		Question:       "Which pigment absorbs light during photosynthesis?",
		Options:        []string{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin"},
		Answer:         "Chlorophyll",
		Explanation:    "The text says chlorophyll absorbs red and blue light.",
		Difficulty:     "medium",
		SourceLocators: []string{"Paragraph 2"},
	}
}

func questionJSON(text string) string {
	return fmt.Sprintf(`{
		"question": %q,
		"options": ["Chlorophyll", "Hemoglobin", "Keratin", "Melanin"],
		"answer": "Chlorophyll",
		"explanation": "The text says chlorophyll absorbs light.",
		"source_locators": ["Paragraph 1"]
	}`, text)
}

func batchJSON(items ...string) json.RawMessage {
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

func TestIngestStoresDocumentChunksAndSummary(t *testing.T) {
	mem := newMemory()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "How photosynthesis turns light into energy."}`),
	})
	a := New(mock, mem.stores(), DefaultConfig())

	path := filepath.Join(t.TempDir(), "plants.txt")
	content := "Photosynthesis converts light into chemical energy.\n\nChlorophyll absorbs red and blue light."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := a.Ingest(t.Context(), path)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected a generated document ID")
	}
	if doc.Filename != "plants.txt" {
		t.Errorf("filename = %q, want %q", doc.Filename, "plants.txt")
	}
	if doc.Format != "txt" {
		t.Errorf("format = %q, want %q", doc.Format, "txt")
	}
	if doc.Status != "success" {
		t.Errorf("status = %q, want %q", doc.Status, "success")
	}
	if doc.ChunkCount < 1 {
		t.Errorf("chunk count = %d, want >= 1", doc.ChunkCount)
	}
	if doc.FileSize != int64(len(content)) {
		t.Errorf("file size = %d, want %d", doc.FileSize, len(content))
	}
	if doc.Summary != "How photosynthesis turns light into energy." {
		t.Errorf("summary = %q", doc.Summary)
	}

	stored, ok := mem.docs.m[doc.ID]
	if !ok {
		t.Fatal("document not stored")
	}
	if stored.Summary != doc.Summary {
		t.Errorf("stored summary = %q, want %q", stored.Summary, doc.Summary)
	}
	if got := len(mem.chunks.m[doc.ID]); got != doc.ChunkCount {
		t.Errorf("stored chunks = %d, want %d", got, doc.ChunkCount)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestIngestSummaryFailureKeepsDocument(t *testing.T) {
	mem := newMemory()
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := New(mock, mem.stores(), DefaultConfig())

	path := filepath.Join(t.TempDir(), "plants.txt")
	if err := os.WriteFile(path, []byte("Photosynthesis converts light into chemical energy."), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := a.Ingest(t.Context(), path)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if doc.Summary != "" {
		t.Errorf("summary = %q, want empty", doc.Summary)
	}
	if _, ok := mem.docs.m[doc.ID]; !ok {
		t.Fatal("document should be stored despite summary failure")
	}
}

func TestIngestUnsupportedFormat(t *testing.T) {
	mem := newMemory()
	a := New(llm.NewMockProvider(), mem.stores(), DefaultConfig())

	path := filepath.Join(t.TempDir(), "notes.xyz")
	if err := os.WriteFile(path, []byte("text"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := a.Ingest(t.Context(), path)
	var exErr *extract.ExtractError
	if !errors.As(err, &exErr) {
		t.Fatalf("expected *extract.ExtractError, got %v", err)
	}
	if len(mem.docs.m) != 0 {
		t.Error("nothing should be stored for a rejected file")
	}
}

func TestAskAnswersAndRecordsHistory(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer": "Chlorophyll absorbs red and blue light.", "cited": [1], "found": true}`),
	})
	a := New(mock, mem.stores(), DefaultConfig())

	ans, err := a.Ask(t.Context(), "doc-1", "What absorbs light?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(ans.Text, "Chlorophyll") {
		t.Errorf("answer = %q, want mention of Chlorophyll", ans.Text)
	}
	if len(ans.Citations) != 1 || ans.Citations[0] != "Paragraph 2" {
		t.Errorf("citations = %v, want [Paragraph 2]", ans.Citations)
	}
	if !ans.Found {
		t.Error("expected found = true")
	}

	if len(mem.history.list) != 1 {
		t.Fatalf("history entries = %d, want 1", len(mem.history.list))
	}
	entry := mem.history.list[0]
	if entry.Type != "freeform" {
		t.Errorf("history type = %q, want freeform", entry.Type)
	}
	if entry.Answer != ans.Text {
		t.Errorf("history answer = %q, want %q", entry.Answer, ans.Text)
	}
	if entry.Confidence <= 0 {
		t.Errorf("history confidence = %v, want > 0", entry.Confidence)
	}
}

func TestAskUnknownDocument(t *testing.T) {
	mem := newMemory()
	mock := llm.NewMockProvider()
	a := New(mock, mem.stores(), DefaultConfig())

	_, err := a.Ask(t.Context(), "missing", "Anything?")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestAskFailureRecordsNothing(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTimeout{After: 45 * time.Second, Err: context.DeadlineExceeded},
	})
	a := New(mock, mem.stores(), DefaultConfig())

	_, err := a.Ask(t.Context(), "doc-1", "What absorbs light?")
	var genErr *qa.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *qa.GenerationError, got %v", err)
	}
	if len(mem.history.list) != 0 {
		t.Errorf("history entries = %d after failure, want 0", len(mem.history.list))
	}
}

func TestChallengeStoresBatch(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(
			questionJSON("Which pigment absorbs light during photosynthesis?"),
			questionJSON("What gas do plants release during photosynthesis?"),
		),
	})
	a := New(mock, mem.stores(), DefaultConfig())

	qs, err := a.Challenge(t.Context(), "doc-1", "medium", 2)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len(qs) = %d, want 2", len(qs))
	}
	if qs[0].ID == "" || qs[0].ID == qs[1].ID {
		t.Errorf("question IDs = %q, %q, want distinct non-empty", qs[0].ID, qs[1].ID)
	}
	for i, q := range qs {
		if q.Difficulty != "medium" {
			t.Errorf("qs[%d].Difficulty = %q, want medium", i, q.Difficulty)
		}
	}

	listed, err := a.ChallengeQuestions(t.Context(), "doc-1")
	if err != nil {
		t.Fatalf("ChallengeQuestions: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("stored questions = %d, want 2", len(listed))
	}
}

func TestChallengeShortBatchKeepsPartial(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	repeated := batchJSON(questionJSON("Which pigment absorbs light during photosynthesis?"))
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: repeated},
		llm.MockResponse{Content: repeated},
		llm.MockResponse{Content: repeated},
	)
	a := New(mock, mem.stores(), DefaultConfig())

	qs, err := a.Challenge(t.Context(), "doc-1", "medium", 2)
	var insufficient *challenge.InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected *challenge.InsufficientContentError, got %v", err)
	}
	if insufficient.Requested != 2 || insufficient.Generated != 1 {
		t.Errorf("insufficient = %d of %d, want 1 of 2", insufficient.Generated, insufficient.Requested)
	}
	if len(qs) != 1 {
		t.Fatalf("len(qs) = %d, want 1", len(qs))
	}
	if len(mem.questions.m) != 1 {
		t.Errorf("stored questions = %d, want 1", len(mem.questions.m))
	}
}

func TestChallengeUnsuitableDocument(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks()[:2])
	mock := llm.NewMockProvider()
	a := New(mock, mem.stores(), DefaultConfig())

	qs, err := a.Challenge(t.Context(), "doc-1", "easy", 3)
	var insufficient *challenge.InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected *challenge.InsufficientContentError, got %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("len(qs) = %d, want 0", len(qs))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestEvaluateChallengeMultipleChoiceNoLLM(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mem.questions.CreateBatch(context.Background(), []store.ChallengeQuestion{storedQuestion("q-1", "doc-1")})
	mock := llm.NewMockProvider()
	a := New(mock, mem.stores(), DefaultConfig())

	ev, err := a.EvaluateChallenge(t.Context(), "q-1", "  chlorophyll  ")
	if err != nil {
		t.Fatalf("EvaluateChallenge: %v", err)
	}
	if ev.Score != 100 || !ev.Correct {
		t.Errorf("score = %d correct = %v, want 100 true", ev.Score, ev.Correct)
	}
	if !strings.Contains(ev.Feedback, "Paragraph 2") {
		t.Errorf("feedback = %q, want a Paragraph 2 citation", ev.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}

	evals, err := a.Evaluations(t.Context(), "doc-1")
	if err != nil {
		t.Fatalf("Evaluations: %v", err)
	}
	if len(evals) != 1 {
		t.Fatalf("stored evaluations = %d, want 1", len(evals))
	}
	if evals[0].QuestionID != "q-1" || evals[0].Score != 100 {
		t.Errorf("stored evaluation = %+v", evals[0])
	}
	if len(mem.history.list) != 1 || mem.history.list[0].Type != "challenge" {
		t.Errorf("history = %+v, want one challenge entry", mem.history.list)
	}
}

func TestEvaluateChallengeUnknownQuestion(t *testing.T) {
	mem := newMemory()
	a := New(llm.NewMockProvider(), mem.stores(), DefaultConfig())

	_, err := a.EvaluateChallenge(t.Context(), "q-404", "anything")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestEvaluateFreeGradesAgainstDerivedAnswer(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer": "Chlorophyll absorbs red and blue light.", "cited": [1], "found": true}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": 85, "feedback": "Right pigment, though the text names the absorbed colors; see Paragraph 2."}`)},
	)
	a := New(mock, mem.stores(), DefaultConfig())

	ev, err := a.EvaluateFree(t.Context(), "doc-1", "What absorbs light?", "The green pigment chlorophyll")
	if err != nil {
		t.Fatalf("EvaluateFree: %v", err)
	}
	if ev.Score != 85 || !ev.Correct {
		t.Errorf("score = %d correct = %v, want 85 true", ev.Score, ev.Correct)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2", mock.CallCount())
	}

	if len(mem.evals.list) != 1 {
		t.Fatalf("stored evaluations = %d, want 1", len(mem.evals.list))
	}
	stored := mem.evals.list[0]
	if stored.QuestionID != "" {
		t.Errorf("question ID = %q, want empty for free-form", stored.QuestionID)
	}
	if stored.CorrectAnswer != "Chlorophyll absorbs red and blue light." {
		t.Errorf("correct answer = %q, want the derived reference", stored.CorrectAnswer)
	}
}

func TestDeleteDocumentEvictsCache(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer": "Plants release oxygen.", "cited": [1], "found": true}`),
	})
	a := New(mock, mem.stores(), DefaultConfig())

	if _, err := a.Ask(t.Context(), "doc-1", "What do plants release?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if err := a.DeleteDocument(t.Context(), "doc-1"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	// A second ask must miss the cache and fail on the missing document.
	_, err := a.Ask(t.Context(), "doc-1", "What do plants release?")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound after delete, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestSummarizeRegenerates(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "A fresh summary."}`),
	})
	a := New(mock, mem.stores(), DefaultConfig())

	text, err := a.Summarize(t.Context(), "doc-1")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if text != "A fresh summary." {
		t.Errorf("summary = %q", text)
	}
	if mem.docs.m["doc-1"].Summary != "A fresh summary." {
		t.Errorf("stored summary = %q", mem.docs.m["doc-1"].Summary)
	}
}

func TestSummarizeFailureSurfaces(t *testing.T) {
	mem := newMemory()
	mem.seed("doc-1", docChunks())
	a := New(llm.NewMockProvider(), mem.stores(), DefaultConfig())

	if _, err := a.Summarize(t.Context(), "doc-1"); err == nil {
		t.Fatal("expected an error when the provider is unavailable")
	}
}

func TestHistoryUnknownDocument(t *testing.T) {
	mem := newMemory()
	a := New(llm.NewMockProvider(), mem.stores(), DefaultConfig())

	_, err := a.History(t.Context(), "missing", 10)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}
