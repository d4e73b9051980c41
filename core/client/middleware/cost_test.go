package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/lmorandi/safegen/core/cost"
	"github.com/lmorandi/safegen/providers/ai"
)

func TestCostTrackingMiddleware_RecordsUsage(t *testing.T) {
	tracker := cost.NewTracker(map[string]cost.ModelCost{
		"gpt-5-nano": {InputCostPerMillion: 1.00, OutputCostPerMillion: 4.00},
	})

	next := func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return &ai.ChatResponse{
			Model:   "gpt-5-nano",
			Content: "hi",
			Usage:   &ai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}, nil
	}

	mw := NewCostTrackingMiddleware(tracker)
	for i := 0; i < 3; i++ {
		if _, err := mw(next)(context.Background(), ai.NewUserRequest("gpt-5-nano", "hello", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary := tracker.Summary()
	if summary.Calls != 3 {
		t.Errorf("expected 3 recorded calls, got %d", summary.Calls)
	}
	if summary.Usage.TotalTokens != 45 {
		t.Errorf("expected 45 total tokens, got %d", summary.Usage.TotalTokens)
	}
	if summary.TotalCost == 0 {
		t.Error("expected non-zero cost for priced model")
	}
}

func TestCostTrackingMiddleware_RequestModelFallback(t *testing.T) {
	tracker := cost.NewTracker(map[string]cost.ModelCost{
		"gpt-5-nano": {InputCostPerMillion: 1.00, OutputCostPerMillion: 1.00},
	})

	next := func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return &ai.ChatResponse{
			Content: "hi",
			Usage:   &ai.Usage{PromptTokens: 1_000_000, TotalTokens: 1_000_000},
		}, nil
	}

	mw := NewCostTrackingMiddleware(tracker)
	if _, err := mw(next)(context.Background(), ai.NewUserRequest("gpt-5-nano", "hello", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tracker.Summary().TotalCost; got == 0 {
		t.Error("expected cost priced via the request model when the response omits it")
	}
}

func TestCostTrackingMiddleware_SkipsFailedCalls(t *testing.T) {
	tracker := cost.NewTracker(nil)

	next := func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return nil, errors.New("boom")
	}

	mw := NewCostTrackingMiddleware(tracker)
	if _, err := mw(next)(context.Background(), ai.NewUserRequest("m", "hello", nil)); err == nil {
		t.Fatal("expected error passed through")
	}

	if got := tracker.Summary().Calls; got != 0 {
		t.Errorf("expected no recorded calls, got %d", got)
	}
}
