// Package parse recovers structured values from raw LLM text output. Because
// language models frequently wrap JSON in narrative prose or emit almost-JSON,
// the package applies a layered recovery strategy — last-brace truncation,
// strict decoding, then automatic JSON repair — before reporting a parse
// failure the retry engine can act on.
//
// The main entry points are [Field] and its fixed-field convenience [Output].
package parse
