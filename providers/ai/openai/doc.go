// Package openai implements the [ai.Provider] interface against the OpenAI
// chat completions API, plus the [ai.Embedder] interface against the
// embeddings API. It owns model-name normalization: requests carrying a
// legacy engine identifier or a deprecated davinci-era model name are
// transparently redirected to the configured default model.
package openai
