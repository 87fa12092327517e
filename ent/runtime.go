// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/docent/ent/challengequestion"
	"github.com/abhisek/docent/ent/document"
	"github.com/abhisek/docent/ent/evaluation"
	"github.com/abhisek/docent/ent/llmrequestevent"
	"github.com/abhisek/docent/ent/questionhistory"
	"github.com/abhisek/docent/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengequestionFields := schema.ChallengeQuestion{}.Fields()
	_ = challengequestionFields
	// challengequestionDescCreatedAt is the schema descriptor for created_at field.
	challengequestionDescCreatedAt := challengequestionFields[8].Descriptor()
	// challengequestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	challengequestion.DefaultCreatedAt = challengequestionDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContent is the schema descriptor for content field.
	documentDescContent := documentFields[4].Descriptor()
	// document.DefaultContent holds the default value on creation for the content field.
	document.DefaultContent = documentDescContent.Default.(string)
	// documentDescPreview is the schema descriptor for preview field.
	documentDescPreview := documentFields[5].Descriptor()
	// document.DefaultPreview holds the default value on creation for the preview field.
	document.DefaultPreview = documentDescPreview.Default.(string)
	// documentDescSummary is the schema descriptor for summary field.
	documentDescSummary := documentFields[6].Descriptor()
	// document.DefaultSummary holds the default value on creation for the summary field.
	document.DefaultSummary = documentDescSummary.Default.(string)
	// documentDescChunkCount is the schema descriptor for chunk_count field.
	documentDescChunkCount := documentFields[7].Descriptor()
	// document.DefaultChunkCount holds the default value on creation for the chunk_count field.
	document.DefaultChunkCount = documentDescChunkCount.Default.(int)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[8].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int64)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescQuestionID is the schema descriptor for question_id field.
	evaluationDescQuestionID := evaluationFields[1].Descriptor()
	// evaluation.DefaultQuestionID holds the default value on creation for the question_id field.
	evaluation.DefaultQuestionID = evaluationDescQuestionID.Default.(string)
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[8].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionhistoryFields := schema.QuestionHistory{}.Fields()
	_ = questionhistoryFields
	// questionhistoryDescQuestionType is the schema descriptor for question_type field.
	questionhistoryDescQuestionType := questionhistoryFields[3].Descriptor()
	// questionhistory.DefaultQuestionType holds the default value on creation for the question_type field.
	questionhistory.DefaultQuestionType = questionhistoryDescQuestionType.Default.(string)
	// questionhistoryDescConfidence is the schema descriptor for confidence field.
	questionhistoryDescConfidence := questionhistoryFields[5].Descriptor()
	// questionhistory.DefaultConfidence holds the default value on creation for the confidence field.
	questionhistory.DefaultConfidence = questionhistoryDescConfidence.Default.(float64)
	// questionhistoryDescFound is the schema descriptor for found field.
	questionhistoryDescFound := questionhistoryFields[6].Descriptor()
	// questionhistory.DefaultFound holds the default value on creation for the found field.
	questionhistory.DefaultFound = questionhistoryDescFound.Default.(bool)
	// questionhistoryDescResponseTimeMs is the schema descriptor for response_time_ms field.
	questionhistoryDescResponseTimeMs := questionhistoryFields[7].Descriptor()
	// questionhistory.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	questionhistory.DefaultResponseTimeMs = questionhistoryDescResponseTimeMs.Default.(int64)
	// questionhistoryDescCreatedAt is the schema descriptor for created_at field.
	questionhistoryDescCreatedAt := questionhistoryFields[8].Descriptor()
	// questionhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionhistory.DefaultCreatedAt = questionhistoryDescCreatedAt.Default.(func() time.Time)
}
