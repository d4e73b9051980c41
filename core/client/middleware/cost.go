package middleware

import (
	"context"

	"github.com/lmorandi/safegen/core/client"
	"github.com/lmorandi/safegen/core/cost"
	"github.com/lmorandi/safegen/providers/ai"
)

// NewCostTrackingMiddleware creates a middleware that records every
// successful completion's token usage into the given tracker. Placed on a
// client used by the generate loops it accounts for each attempt, not just
// the attempt that finally validated.
//
// The tracker must not be nil. Failed calls are not recorded: the provider
// returns no usage for them.
func NewCostTrackingMiddleware(tracker *cost.Tracker) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			response, err := next(ctx, request)
			if err != nil {
				return nil, err
			}

			model := response.Model
			if model == "" {
				model = request.Model
			}
			tracker.Record(model, response.Usage)

			return response, nil
		}
	}
}
