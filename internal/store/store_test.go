package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDocument(id, filename string) *Document {
	return &Document{
		ID:         id,
		Filename:   filename,
		Format:     "txt",
		Status:     "success",
		Content:    "Photosynthesis converts light into chemical energy.",
		Preview:    "Photosynthesis converts light",
		ChunkCount: 2,
		FileSize:   52,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"documents", "chunks", "challenge_questions",
		"evaluations", "question_histories", "llm_request_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestDocumentLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()

	// Missing document reads as nil without error.
	doc, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document when none exist")
	}

	if err := repo.Create(ctx, testDocument("doc-1", "plants.txt")); err != nil {
		t.Fatalf("create: %v", err)
	}

	doc, err = repo.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc == nil {
		t.Fatal("expected non-nil document")
	}
	if doc.Filename != "plants.txt" {
		t.Errorf("filename = %q, want %q", doc.Filename, "plants.txt")
	}
	if doc.Status != "success" {
		t.Errorf("status = %q, want %q", doc.Status, "success")
	}
	if doc.ChunkCount != 2 {
		t.Errorf("chunk count = %d, want 2", doc.ChunkCount)
	}
	if doc.Content == "" {
		t.Error("expected stored content")
	}
	if doc.Summary != "" {
		t.Errorf("summary = %q, want empty before SetSummary", doc.Summary)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("expected non-zero created_at")
	}

	if err := repo.SetSummary(ctx, "doc-1", "A short summary."); err != nil {
		t.Fatalf("set summary: %v", err)
	}
	doc, err = repo.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get after summary: %v", err)
	}
	if doc.Summary != "A short summary." {
		t.Errorf("summary = %q, want %q", doc.Summary, "A short summary.")
	}
}

func TestDocumentSetSummaryMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()

	err := repo.SetSummary(context.Background(), "missing", "s")
	if err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestDocumentListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()

	for _, id := range []string{"doc-1", "doc-2", "doc-3"} {
		if err := repo.Create(ctx, testDocument(id, id+".txt")); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len(docs) = %d, want 3", len(docs))
	}
	want := []string{"doc-3", "doc-2", "doc-1"}
	for i, id := range want {
		if docs[i].ID != id {
			t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, id)
		}
	}
}

func testChunks(documentID string) []Chunk {
	return []Chunk{
		{DocumentID: documentID, Index: 0, Start: 0, End: 20, Locator: "Paragraph 1", Text: "Photosynthesis conve"},
		{DocumentID: documentID, Index: 1, Start: 15, End: 40, Locator: "Paragraph 1", Text: "converts light into chema"},
		{DocumentID: documentID, Index: 2, Start: 35, End: 52, Locator: "Paragraph 2", Text: "chemical energy."},
	}
}

func TestChunkReplaceAllAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChunkRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, "doc-1", testChunks("doc-1")); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	chunks, err := repo.ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunks[%d].Index = %d, want %d", i, c.Index, i)
		}
	}
	if chunks[1].Start != 15 || chunks[1].End != 40 {
		t.Errorf("chunks[1] span = [%d,%d), want [15,40)", chunks[1].Start, chunks[1].End)
	}
	if chunks[2].Locator != "Paragraph 2" {
		t.Errorf("chunks[2].Locator = %q, want %q", chunks[2].Locator, "Paragraph 2")
	}

	// Replacing again swaps the whole set.
	if err := repo.ReplaceAll(ctx, "doc-1", testChunks("doc-1")[:1]); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	chunks, err = repo.ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list after replace: %v", err)
	}
	if len(chunks) != 1 {
		t.Errorf("len(chunks) = %d after replace, want 1", len(chunks))
	}
}

func TestChunkListOtherDocumentEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChunkRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, "doc-1", testChunks("doc-1")); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	chunks, err := repo.ListByDocument(ctx, "doc-2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("len(chunks) = %d for other document, want 0", len(chunks))
	}
}

func testQuestion(id, documentID string) ChallengeQuestion {
	return ChallengeQuestion{
		ID:             id,
		DocumentID:     documentID,
		Question:       "Which pigment absorbs light during photosynthesis?",
		Options:        []string{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin"},
		Answer:         "Chlorophyll",
		Explanation:    "Chlorophyll absorbs red and blue light.",
		Difficulty:     "medium",
		SourceLocators: []string{"Paragraph 1"},
	}
}

func TestChallengeBatchAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChallengeRepo()
	ctx := context.Background()

	batch := []ChallengeQuestion{
		testQuestion("q-1", "doc-1"),
		testQuestion("q-2", "doc-1"),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	q, err := repo.Get(ctx, "q-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q == nil {
		t.Fatal("expected non-nil question")
	}
	if len(q.Options) != 4 {
		t.Errorf("len(options) = %d, want 4", len(q.Options))
	}
	if q.Answer != "Chlorophyll" {
		t.Errorf("answer = %q, want %q", q.Answer, "Chlorophyll")
	}
	if q.Difficulty != "medium" {
		t.Errorf("difficulty = %q, want %q", q.Difficulty, "medium")
	}
	if len(q.SourceLocators) != 1 || q.SourceLocators[0] != "Paragraph 1" {
		t.Errorf("source locators = %v, want [Paragraph 1]", q.SourceLocators)
	}

	missing, err := repo.Get(ctx, "q-404")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil question when ID is unknown")
	}

	list, err := repo.ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].ID != "q-1" || list[1].ID != "q-2" {
		t.Errorf("list order = [%s %s], want [q-1 q-2]", list[0].ID, list[1].ID)
	}
}

func TestEvaluationCreateAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EvaluationRepo()
	ctx := context.Background()

	first := &Evaluation{
		DocumentID:    "doc-1",
		QuestionID:    "q-1",
		Question:      "Which pigment absorbs light?",
		UserAnswer:    "Chlorophyll",
		CorrectAnswer: "Chlorophyll",
		Score:         100,
		Correct:       true,
		Feedback:      "Correct.",
	}
	second := &Evaluation{
		DocumentID:    "doc-1",
		Question:      "What does photosynthesis produce?",
		UserAnswer:    "Heat",
		CorrectAnswer: "Glucose and oxygen",
		Score:         10,
		Correct:       false,
		Feedback:      "The correct answer is glucose and oxygen.",
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := repo.ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	// Newest first.
	if list[0].Score != 10 || list[1].Score != 100 {
		t.Errorf("scores = [%d %d], want [10 100]", list[0].Score, list[1].Score)
	}
	if list[1].QuestionID != "q-1" {
		t.Errorf("question id = %q, want %q", list[1].QuestionID, "q-1")
	}
	if list[0].QuestionID != "" {
		t.Errorf("free-form question id = %q, want empty", list[0].QuestionID)
	}
	if !list[1].Correct || list[0].Correct {
		t.Errorf("correct flags = [%v %v], want [false true]", list[0].Correct, list[1].Correct)
	}
}

func TestHistoryAppendAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	questions := []string{"first", "second", "third"}
	for _, q := range questions {
		err := repo.Append(ctx, &HistoryEntry{
			DocumentID:     "doc-1",
			Question:       q,
			Answer:         "answer to " + q,
			Type:           "freeform",
			Citations:      []string{"Paragraph 1"},
			Confidence:     0.8,
			Found:          true,
			ResponseTimeMs: 1200,
		})
		if err != nil {
			t.Fatalf("append %s: %v", q, err)
		}
	}

	list, err := repo.ListByDocument(ctx, "doc-1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Question != "third" || list[1].Question != "second" {
		t.Errorf("questions = [%s %s], want [third second]", list[0].Question, list[1].Question)
	}
	if list[0].Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", list[0].Confidence)
	}
	if len(list[0].Citations) != 1 {
		t.Errorf("len(citations) = %d, want 1", len(list[0].Citations))
	}

	all, err := repo.ListByDocument(ctx, "doc-1", 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func testEvent(purpose, model string, latency int64) LLMRequestEventData {
	return LLMRequestEventData{
		Provider:     "anthropic",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    latency,
		Success:      true,
		RequestBody:  "[user]\nquestion",
		ResponseBody: `{"answer":"text"}`,
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, testEvent("summary", "model-a", 100)); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, testEvent("grounded-answer", "model-a", 200)); err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "grounded-answer" {
		t.Errorf("events[0].Purpose = %q, want %q", events[0].Purpose, "grounded-answer")
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequences = [%d %d], want descending", events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody == "" || events[0].ResponseBody == "" {
		t.Error("expected stored request and response bodies")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("len(limited) = %d, want 1", len(limited))
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].Sequence != events[0].Sequence {
		t.Errorf("after query returned %d events, want exactly the newest", len(after))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "summary"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Purpose != "summary" {
		t.Errorf("purpose filter returned %d events, want only the summary one", len(byPurpose))
	}
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := testEvent("evaluation", "model-b", 300)
	data.Success = false
	data.ErrorMessage = "rate limited"
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil event")
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q, want %q", e.ErrorMessage, "rate limited")
	}
	if e.Success {
		t.Error("expected success = false")
	}

	missing, err := repo.GetLLMEvent(ctx, events[0].ID+1000)
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil event for unknown ID")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		testEvent("summary", "model-a", 100),
		testEvent("summary", "model-a", 300),
		testEvent("evaluation", "model-b", 50),
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("len(byPurpose) = %d, want 2", len(byPurpose))
	}
	// Sorted by calls descending, so summary comes first.
	if byPurpose[0].Purpose != "summary" {
		t.Fatalf("byPurpose[0] = %q, want summary", byPurpose[0].Purpose)
	}
	if byPurpose[0].Calls != 2 {
		t.Errorf("summary calls = %d, want 2", byPurpose[0].Calls)
	}
	if byPurpose[0].InputTokens != 200 || byPurpose[0].OutputTokens != 100 {
		t.Errorf("summary tokens = %d/%d, want 200/100",
			byPurpose[0].InputTokens, byPurpose[0].OutputTokens)
	}
	if byPurpose[0].AvgLatencyMs != 200 {
		t.Errorf("summary avg latency = %v, want 200", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("len(byModel) = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].Calls != 2 {
		t.Errorf("byModel[0] = %s/%d, want model-a/2", byModel[0].Model, byModel[0].Calls)
	}
}

func TestDocumentDeleteRemovesDependents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.DocumentRepo().Create(ctx, testDocument("doc-1", "plants.txt")); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := s.ChunkRepo().ReplaceAll(ctx, "doc-1", testChunks("doc-1")); err != nil {
		t.Fatalf("create chunks: %v", err)
	}
	if err := s.ChallengeRepo().CreateBatch(ctx, []ChallengeQuestion{testQuestion("q-1", "doc-1")}); err != nil {
		t.Fatalf("create question: %v", err)
	}
	if err := s.EvaluationRepo().Create(ctx, &Evaluation{DocumentID: "doc-1", QuestionID: "q-1", Score: 100, Correct: true}); err != nil {
		t.Fatalf("create evaluation: %v", err)
	}
	if err := s.HistoryRepo().Append(ctx, &HistoryEntry{DocumentID: "doc-1", Question: "q", Answer: "a", Type: "freeform"}); err != nil {
		t.Fatalf("create history: %v", err)
	}

	// A second document must survive the delete.
	if err := s.DocumentRepo().Create(ctx, testDocument("doc-2", "other.txt")); err != nil {
		t.Fatalf("create second document: %v", err)
	}
	if err := s.ChunkRepo().ReplaceAll(ctx, "doc-2", testChunks("doc-2")[:1]); err != nil {
		t.Fatalf("create second chunks: %v", err)
	}

	if err := s.DocumentRepo().Delete(ctx, "doc-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	doc, err := s.DocumentRepo().Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if doc != nil {
		t.Fatal("expected document to be gone")
	}
	chunks, err := s.ChunkRepo().ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("chunks after delete: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("len(chunks) = %d after delete, want 0", len(chunks))
	}
	questions, err := s.ChallengeRepo().ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("questions after delete: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len(questions) = %d after delete, want 0", len(questions))
	}
	evals, err := s.EvaluationRepo().ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("evaluations after delete: %v", err)
	}
	if len(evals) != 0 {
		t.Errorf("len(evals) = %d after delete, want 0", len(evals))
	}
	history, err := s.HistoryRepo().ListByDocument(ctx, "doc-1", 0)
	if err != nil {
		t.Fatalf("history after delete: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("len(history) = %d after delete, want 0", len(history))
	}

	// doc-2 untouched.
	other, err := s.DocumentRepo().Get(ctx, "doc-2")
	if err != nil {
		t.Fatalf("get doc-2: %v", err)
	}
	if other == nil {
		t.Fatal("expected doc-2 to survive")
	}
	otherChunks, err := s.ChunkRepo().ListByDocument(ctx, "doc-2")
	if err != nil {
		t.Fatalf("doc-2 chunks: %v", err)
	}
	if len(otherChunks) != 1 {
		t.Errorf("len(doc-2 chunks) = %d, want 1", len(otherChunks))
	}

	// Deleting again reports the document as missing.
	if err := s.DocumentRepo().Delete(ctx, "doc-1"); err == nil {
		t.Fatal("expected error deleting a missing document")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
