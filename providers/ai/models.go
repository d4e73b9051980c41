package ai

/*
	##### PROVIDER INPUT #####
*/

// MessageRole identifies the author of a conversation message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// GenerationConfig carries the optional sampling parameters for a request.
// Pointer fields distinguish "not set" from an explicit zero: a temperature
// of 0 must still reach the wire, while an unset temperature must be omitted.
type GenerationConfig struct {
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"` // Max tokens to generate for the response
	Temperature     *float64 `json:"temperature,omitempty"`       // Sampling temperature. Lower => more deterministic.
	TopP            *float64 `json:"top_p,omitempty"`             // Nucleus sampling. The provider default of 1 is omitted from the wire.
	TopK            *int     `json:"top_k,omitempty"`             // Top-k sampling. Passed through only when set; not all models support it.
}

// ChatRequest represents a request to send a chat message. Requests are
// treated as immutable once constructed: providers and the client build
// derived wire requests instead of mutating the original.
type ChatRequest struct {
	Model    string    `json:"model,omitempty"` // Model name; empty means the provider's configured default
	Messages []Message `json:"messages"`

	// Engine is the legacy predecessor of Model. A non-empty Engine marks
	// the request as written against the deprecated interface; providers
	// substitute their configured default model and never transmit this
	// field.
	//
	// Deprecated: set Model instead.
	Engine string `json:"-"`

	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
}

// NewUserRequest builds a single-turn request with one user message. This is
// the shape the retry engine issues for every attempt.
func NewUserRequest(model, prompt string, gen *GenerationConfig) ChatRequest {
	return ChatRequest{
		Model:            model,
		Messages:         []Message{{Role: RoleUser, Content: prompt}},
		GenerationConfig: gen,
	}
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports the token accounting for a single completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the completed response from a chat request. Content
// is the assistant message text of the first completion choice.
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Created      int64  `json:"created"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}
