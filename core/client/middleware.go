package client

import (
	"context"

	"github.com/lmorandi/safegen/providers/ai"
)

// SendFunc is a function that sends a chat request to the LLM provider and
// returns the completed response. It is the base unit threaded through the
// send middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts and optionally transforms provider calls. Each
// Middleware receives the next SendFunc in the chain and returns a new
// SendFunc that wraps it. Middlewares are applied outermost-first: the first
// middleware passed to [WithMiddlewares] is the outermost wrapper, i.e. the
// first to execute on an incoming request.
type Middleware func(next SendFunc) SendFunc

// buildSendChain constructs the linear send middleware chain. The base
// function calls the provider directly. Middlewares are applied in reverse
// order so that middlewares[0] becomes the outermost wrapper.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
