package client

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lmorandi/safegen/core/parse"
	"github.com/lmorandi/safegen/internal/utils"
	"github.com/lmorandi/safegen/providers/ai"
)

// Default attempt budgets, matching the historical behavior of this layer:
// the direct variant retries more aggressively than the JSON variant.
const (
	DefaultAttempts     = 5
	DefaultJSONAttempts = 3
)

// Policy bundles the caller-supplied pieces of the retry-validate-cleanup
// loop: a validation predicate, a cleanup transform, a fallback value, and an
// attempt budget. Validate and CleanUp both receive the candidate response
// text and the prompt that produced it; both must be pure with respect to
// engine state and are invoked at most once per attempt, never on a value
// that failed transport or extraction.
type Policy[T any] struct {
	// Validate reports whether the response answers the prompt. Required.
	Validate func(response, prompt string) bool

	// CleanUp normalizes a validated response into the final value. Required.
	CleanUp func(response, prompt string) T

	// Fallback is returned by Generate when every attempt fails. Ignored by
	// GenerateJSON, which signals exhaustion with ErrNoAnswer instead.
	Fallback T

	// Attempts is the maximum number of provider calls. Values below 1 fall
	// back to DefaultAttempts (Generate) or DefaultJSONAttempts
	// (GenerateJSON).
	Attempts int
}

// check rejects a Policy missing its required functions so the
// misconfiguration surfaces before any provider call.
func (p Policy[T]) check() error {
	if p.Validate == nil || p.CleanUp == nil {
		return ErrInvalidPolicy
	}
	return nil
}

// attemptOutcome classifies one iteration of the retry loop.
type attemptOutcome string

const (
	outcomeOK                attemptOutcome = "success"
	outcomeTransportFailure  attemptOutcome = "transport-failure"
	outcomeParseFailure      attemptOutcome = "parse-failure"
	outcomeValidationFailure attemptOutcome = "validation-failure"
)

// JSONFormat describes the JSON envelope GenerateJSON instructs the model to
// emit: an example value for the "output" field and an optional special
// instruction appended to the wrapper.
type JSONFormat struct {
	Example     string
	Instruction string
}

// wrapPrompt builds the JSON-mode prompt: the caller's prompt quoted in
// triple quotes, followed by the instruction to answer as a JSON object of
// shape {"output": <value>} with an example.
func (f JSONFormat) wrapPrompt(prompt string) string {
	var b strings.Builder
	b.WriteString("\"\"\"\n")
	b.WriteString(prompt)
	b.WriteString("\n\"\"\"\n")
	b.WriteString("Output the response to the prompt above in json. ")
	b.WriteString(f.Instruction)
	b.WriteString("\nExample output json:\n")
	b.WriteString(`{"output": "`)
	b.WriteString(f.Example)
	b.WriteString(`"}`)
	return b.String()
}

// Generate runs the direct-validation retry loop: up to policy.Attempts
// sequential provider calls, each response handed to policy.Validate and, on
// acceptance, normalized by policy.CleanUp. Transport failures and responses
// consisting of a legacy sentinel literal are absorbed as retry triggers and
// observable only via logging.
//
// On exhaustion Generate returns policy.Fallback together with an error
// wrapping [ErrExhausted]; the fallback is the caller-visible result, the
// error makes exhaustion observable. A canceled context ends the loop early
// and returns the fallback with the context's error.
func Generate[T any](ctx context.Context, c *Client, prompt string, policy Policy[T], opts ...SendOption) (T, error) {
	if err := policy.check(); err != nil {
		var zero T
		return zero, err
	}

	attempts := policy.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}

	request := ai.NewUserRequest("", prompt, nil)

	for attempt := 1; attempt <= attempts; attempt++ {
		text, outcome := c.attemptText(ctx, request, attempt, false, opts)
		if outcome != outcomeOK {
			if ctx.Err() != nil {
				return policy.Fallback, ctx.Err()
			}
			continue
		}

		if policy.Validate(text, prompt) {
			return policy.CleanUp(text, prompt), nil
		}
		c.logAttempt(attempt, outcomeValidationFailure, text)
	}

	c.logger.Warn("all attempts failed, using fallback", slog.Int("attempts", attempts))
	return policy.Fallback, errExhaustedAfter(attempts)
}

// GenerateJSON runs the JSON-extraction retry loop. The caller's prompt is
// wrapped with an instruction to answer as {"output": <value>} JSON (see
// [JSONFormat]); each response must pass [parse.Output] before
// policy.Validate runs. Validate and CleanUp receive the wrapped prompt, the
// same text the model saw.
//
// On exhaustion GenerateJSON deliberately does NOT return policy.Fallback: it
// returns the zero value and [ErrNoAnswer], a distinguished "no answer
// obtained" signal. Callers must handle both a cleaned value and this signal.
func GenerateJSON[T any](ctx context.Context, c *Client, prompt string, format JSONFormat, policy Policy[T], opts ...SendOption) (T, error) {
	var zero T

	if err := policy.check(); err != nil {
		return zero, err
	}

	attempts := policy.Attempts
	if attempts < 1 {
		attempts = DefaultJSONAttempts
	}

	wrapped := format.wrapPrompt(prompt)
	request := ai.NewUserRequest("", wrapped, nil)

	for attempt := 1; attempt <= attempts; attempt++ {
		value, outcome := c.attemptText(ctx, request, attempt, true, opts)
		if outcome != outcomeOK {
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			continue
		}

		if policy.Validate(value, wrapped) {
			return policy.CleanUp(value, wrapped), nil
		}
		c.logAttempt(attempt, outcomeValidationFailure, value)
	}

	c.logger.Warn("all attempts failed, no answer obtained", slog.Int("attempts", attempts))
	return zero, ErrNoAnswer
}

// attemptText performs one attempt: a single Send, sentinel and emptiness
// checks, and — for the JSON variant — the extraction step. It returns the
// candidate text for validation, or an empty string with a failure outcome.
// Every failure is logged here so the variants only log validation failures.
func (c *Client) attemptText(ctx context.Context, request ai.ChatRequest, attempt int, extract bool, opts []SendOption) (string, attemptOutcome) {
	response, err := c.Send(ctx, request, opts...)
	if err != nil {
		c.logger.Warn("generate attempt failed",
			slog.Int("attempt", attempt),
			slog.String("outcome", string(outcomeTransportFailure)),
			slog.String("sentinel", ai.SentinelText(err)),
			slog.String("error", err.Error()),
		)
		return "", outcomeTransportFailure
	}

	text := strings.TrimSpace(response.Content)
	if text == "" || ai.IsSentinel(text) {
		c.logger.Warn("generate attempt failed",
			slog.Int("attempt", attempt),
			slog.String("outcome", string(outcomeTransportFailure)),
			slog.String("response", text),
		)
		return "", outcomeTransportFailure
	}

	if extract {
		value, err := parse.Output(text)
		if err != nil {
			c.logAttempt(attempt, outcomeParseFailure, err.Error())
			return "", outcomeParseFailure
		}
		return value, outcomeOK
	}

	return text, outcomeOK
}

// logAttempt records a failed attempt with a truncated detail preview.
func (c *Client) logAttempt(attempt int, outcome attemptOutcome, detail string) {
	c.logger.Warn("generate attempt failed",
		slog.Int("attempt", attempt),
		slog.String("outcome", string(outcome)),
		slog.String("detail", utils.TruncateString(detail, 200)),
	)
}
