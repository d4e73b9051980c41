// Package client hosts the retry-validate-cleanup engine, the orchestration
// point callers use to get a trustworthy value out of an LLM.
//
// Two generate variants exist. [Generate] validates the provider's raw text
// directly and falls back to a caller-supplied value when the attempt budget
// is exhausted. [GenerateJSON] wraps the prompt with a JSON instruction,
// requires extraction of the "output" field to succeed before validation, and
// signals exhaustion with [ErrNoAnswer] instead of the fallback.
//
// Both variants issue strictly sequential attempts through a [Client], whose
// provider call runs through an optional middleware chain (see the middleware
// subpackage for logging and timeout middlewares) and is preceded by a fixed,
// disableable pre-call pause. Transport, parse, and validation failures are
// absorbed as retry triggers and observable only via logging; only exhaustion
// crosses the boundary.
package client
