// Package cost provides token usage and spend accounting for LLM calls.
// Because the retry engine may issue several provider calls per caller-visible
// result, per-call accounting is the only way to see what a generate loop
// actually spent. Attach a [Tracker] to a client with the cost middleware in
// core/client/middleware.
package cost
