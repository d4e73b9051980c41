package client

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by [Generate] when the attempt budget is consumed
// without a validated response. It is returned alongside the policy's
// fallback value, so callers may either use the fallback directly or branch
// on the error:
//
//	value, err := client.Generate(ctx, c, prompt, policy)
//	if errors.Is(err, client.ErrExhausted) {
//	    // value holds policy.Fallback
//	}
var ErrExhausted = errors.New("safegen: all attempts exhausted")

// ErrNoAnswer is returned by [GenerateJSON] when the attempt budget is
// consumed without a validated response. Unlike [Generate], the JSON variant
// does NOT return the policy fallback — callers receive the zero value and
// this distinguished signal, and must handle both outcomes.
var ErrNoAnswer = errors.New("safegen: no answer obtained")

// ErrInvalidPolicy is returned when a Policy is missing its Validate or
// CleanUp function.
var ErrInvalidPolicy = errors.New("safegen: policy requires Validate and CleanUp functions")

// errExhaustedAfter wraps ErrExhausted with the consumed attempt count.
func errExhaustedAfter(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrExhausted, attempts)
}
