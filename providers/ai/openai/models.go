package openai

import (
	"strings"

	"github.com/lmorandi/safegen/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format.
// Optional sampling parameters are pointers so that an explicit zero (e.g.
// temperature 0) survives serialization while unset values are omitted.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	TopK        *int          `json:"top_k,omitempty"` // Not all models support this
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "content_filter"
}

type chatResponseMessage struct {
	Role    string `json:"role"` // "assistant"
	Content string `json:"content,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	EMBEDDINGS API
*/

type embeddingRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
}

/*
	CONVERSION FUNCTIONS
*/

// normalizeModel resolves the model name for the wire request. Requests still
// written against the legacy interface — a populated Engine field or a
// deprecated davinci-era model name — are silently redirected to the
// configured default model, so old callers keep functioning unchanged.
func normalizeModel(request ai.ChatRequest, defaultModel string) string {
	model := request.Model
	if model == "" || request.Engine != "" || strings.Contains(model, "davinci") {
		return defaultModel
	}
	return model
}

// requestToChatCompletion converts ai.ChatRequest to the chat completions
// wire format. The legacy Engine field never reaches the wire.
func requestToChatCompletion(request ai.ChatRequest, defaultModel string) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: normalizeModel(request, defaultModel),
	}

	for _, message := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	if gen := request.GenerationConfig; gen != nil {
		if gen.MaxOutputTokens > 0 {
			maxTokens := gen.MaxOutputTokens
			req.MaxTokens = &maxTokens
		}
		req.Temperature = gen.Temperature
		// top_p of 1 is the provider default and is left off the wire.
		if gen.TopP != nil && *gen.TopP != 1 {
			req.TopP = gen.TopP
		}
		req.TopK = gen.TopK
	}

	return req
}

// responseToGeneric converts the chat completions wire response into the
// provider-neutral ai.ChatResponse. The caller guarantees at least one choice.
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	choice := resp.Choices[0]

	generic := &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Created:      resp.Created,
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
	}

	if resp.Usage != nil {
		generic.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return generic
}
