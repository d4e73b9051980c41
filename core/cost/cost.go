package cost

import (
	"fmt"
	"sync"

	"github.com/lmorandi/safegen/providers/ai"
)

// ModelCost is the pricing structure for a language model, expressed in USD
// per million tokens.
//
// Example usage:
//
//	pricing := cost.ModelCost{
//	    InputCostPerMillion:  2.50,
//	    OutputCostPerMillion: 10.00,
//	}
type ModelCost struct {
	// InputCostPerMillion is the cost in USD per 1 million prompt tokens
	InputCostPerMillion float64 `json:"input_cost_per_million"`

	// OutputCostPerMillion is the cost in USD per 1 million completion tokens
	OutputCostPerMillion float64 `json:"output_cost_per_million"`
}

// CalculateInputCost calculates the cost for the given number of prompt tokens.
func (mc ModelCost) CalculateInputCost(tokens int) float64 {
	return (float64(tokens) / 1_000_000.0) * mc.InputCostPerMillion
}

// CalculateOutputCost calculates the cost for the given number of completion tokens.
func (mc ModelCost) CalculateOutputCost(tokens int) float64 {
	return (float64(tokens) / 1_000_000.0) * mc.OutputCostPerMillion
}

// CalculateCost calculates the total cost of one completion's token usage.
func (mc ModelCost) CalculateCost(usage ai.Usage) float64 {
	return mc.CalculateInputCost(usage.PromptTokens) + mc.CalculateOutputCost(usage.CompletionTokens)
}

// String returns a formatted string representation of the model costs.
func (mc ModelCost) String() string {
	return fmt.Sprintf("Input: $%.6f/M, Output: $%.6f/M",
		mc.InputCostPerMillion, mc.OutputCostPerMillion)
}

// Summary is a point-in-time snapshot of accumulated usage. Retry loops issue
// several provider calls per caller-visible result, so Calls is typically
// larger than the number of generate invocations.
type Summary struct {
	// Calls is the number of completions recorded
	Calls int `json:"calls"`

	// Usage is the accumulated token counts across all recorded completions
	Usage ai.Usage `json:"usage"`

	// TotalCost is the accumulated cost in USD. Zero when the tracker has no
	// pricing configured.
	TotalCost float64 `json:"total_cost"`

	// Currency is always "USD" for consistency
	Currency string `json:"currency"`
}

// String returns a one-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d calls, %d tokens, $%.6f %s",
		s.Calls, s.Usage.TotalTokens, s.TotalCost, s.Currency)
}

// Tracker accumulates token usage and cost across provider calls. It is safe
// for concurrent use, so a single Tracker can sit behind a shared client.
type Tracker struct {
	mu      sync.Mutex
	pricing map[string]ModelCost
	calls   int
	usage   ai.Usage
	total   float64
}

// NewTracker creates a Tracker with per-model pricing. Models without a
// pricing entry still have their token usage accumulated, at zero cost.
func NewTracker(pricing map[string]ModelCost) *Tracker {
	t := &Tracker{pricing: map[string]ModelCost{}}
	for model, mc := range pricing {
		t.pricing[model] = mc
	}
	return t
}

// Record accumulates one completion's usage under the given model's pricing.
// Nil usage counts the call but adds no tokens.
func (t *Tracker) Record(model string, usage *ai.Usage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls++
	if usage == nil {
		return
	}

	t.usage.PromptTokens += usage.PromptTokens
	t.usage.CompletionTokens += usage.CompletionTokens
	t.usage.TotalTokens += usage.TotalTokens

	if mc, ok := t.pricing[model]; ok {
		t.total += mc.CalculateCost(*usage)
	}
}

// Summary returns a snapshot of the accumulated usage and cost.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Summary{
		Calls:     t.calls,
		Usage:     t.usage,
		TotalCost: t.total,
		Currency:  "USD",
	}
}

// Reset clears the accumulated usage, keeping the pricing table.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = 0
	t.usage = ai.Usage{}
	t.total = 0
}
