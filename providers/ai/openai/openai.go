package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/lmorandi/safegen/config"
	"github.com/lmorandi/safegen/internal/utils"
	"github.com/lmorandi/safegen/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
	embeddingsEndpoint      = "/embeddings"

	// defaultEmbeddingModel is used for Embed calls unless overridden.
	defaultEmbeddingModel = "text-embedding-ada-002"
)

// OpenAIProvider implements the [ai.Provider] and [ai.Embedder] interfaces
// for the OpenAI API.
type OpenAIProvider struct {
	apiKey         string
	baseURL        string
	defaultModel   string
	embeddingModel string
	client         *http.Client
}

// New creates an OpenAI provider from explicit configuration. The provider
// holds no ambient state: credentials and the default model come from cfg,
// constructed once at process start (see [config.FromEnv]).
func New(cfg config.Config) *OpenAIProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}

	return &OpenAIProvider{
		apiKey:         cfg.APIKey,
		baseURL:        baseURL,
		defaultModel:   model,
		embeddingModel: defaultEmbeddingModel,
		client:         &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// WithEmbeddingModel overrides the model used for Embed calls.
func (p *OpenAIProvider) WithEmbeddingModel(model string) *OpenAIProvider {
	p.embeddingModel = model
	return p
}

// SendMessage implements the Provider interface. It performs one call to the
// chat completions endpoint and classifies failures into the ai error
// taxonomy: 429 wraps [ai.ErrRateLimited], other provider-declared errors
// wrap [ai.ErrAPI], a response without choices wraps [ai.ErrEmptyResponse],
// and anything else (network, serialization) propagates as a plain wrapped
// error.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	wireRequest := requestToChatCompletion(request, p.defaultModel)

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, wireRequest)
	if err != nil {
		return nil, classifyError(httpResponse, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w (model %s)", ai.ErrEmptyResponse, wireRequest.Model)
	}

	return responseToGeneric(*resp), nil
}

// Embed implements the [ai.Embedder] interface via the embeddings endpoint.
// Newlines are collapsed to spaces and blank input is replaced by a
// placeholder, since the endpoint rejects empty strings.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		text = "this is blank"
	}

	httpResponse, resp, err := utils.DoPostSync[embeddingResponse](ctx, p.client, p.baseURL+embeddingsEndpoint, p.apiKey, embeddingRequest{
		Input: []string{text},
		Model: p.embeddingModel,
	})
	if err != nil {
		return nil, classifyError(httpResponse, err)
	}

	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w (embeddings)", ai.ErrEmptyResponse)
	}

	return resp.Data[0].Embedding, nil
}

// classifyError maps an HTTP-level failure onto the ai error taxonomy using
// the response status code. With no response at all (network failure,
// serialization error) the original error propagates unwrapped.
func classifyError(res *http.Response, err error) error {
	if res == nil {
		return err
	}

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ai.ErrRateLimited, err)
	case res.StatusCode >= 400:
		return fmt.Errorf("%w: %v", ai.ErrAPI, err)
	}

	return err
}
