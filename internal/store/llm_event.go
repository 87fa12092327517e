package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Purpose != "" {
		query = query.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEvent, len(events))
	for i, e := range events {
		records[i] = *entLLMEventToLLMEvent(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return entLLMEventToLLMEvent(e), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var stats []PurposeUsage
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "count"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "mean_latency_ms"),
		).
		Scan(ctx, &stats)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	// SQLite group ordering is unspecified; sort for stable output.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Calls != stats[j].Calls {
			return stats[i].Calls > stats[j].Calls
		}
		return stats[i].Purpose < stats[j].Purpose
	})
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var stats []ModelUsage
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "count"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &stats)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Calls != stats[j].Calls {
			return stats[i].Calls > stats[j].Calls
		}
		return stats[i].Model < stats[j].Model
	})
	return stats, nil
}

// entLLMEventToLLMEvent converts an ent LLMRequestEvent to a store record.
func entLLMEventToLLMEvent(e *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
