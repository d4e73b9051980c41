// Package ai defines the provider-neutral request/response model and the
// Provider interface that concrete LLM backends implement. It also carries
// the provider failure taxonomy ([ErrRateLimited], [ErrEmptyResponse],
// [ErrAPI]) and the mapping back to the legacy sentinel strings used at text
// boundaries.
package ai
