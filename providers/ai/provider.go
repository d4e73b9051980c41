package ai

import (
	"context"
	"net/http"
)

// Provider is the core interface every LLM provider implementation must
// satisfy. It covers the full lifecycle of a single request: authentication,
// endpoint configuration, message dispatch, and response interpretation.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. All failures are returned as errors; provider
	// declared failures wrap the taxonomy in errors.go so callers can
	// classify them with errors.Is.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}

// Embedder is an optional interface providers can implement to expose a text
// embedding endpoint. Callers detect support via type assertion:
// provider.(ai.Embedder).
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)
}
