package ai

import "errors"

// Provider failure taxonomy. Provider implementations classify their failures
// by wrapping one of these sentinel errors, so callers branch with
// [errors.Is] instead of matching on message text. Failures that fit none of
// these categories (network errors, serialization errors) propagate as plain
// wrapped errors.
var (
	// ErrRateLimited marks a rate-limit signal from the provider.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrEmptyResponse marks a well-formed provider response that carried no
	// completion choices.
	ErrEmptyResponse = errors.New("provider returned no choices")

	// ErrAPI marks any other provider-declared API error (4xx/5xx).
	ErrAPI = errors.New("provider api error")
)

// Legacy sentinel strings. Earlier revisions of this layer signaled failures
// by returning these literals in place of response text; they survive only at
// the text/log boundary for consumers that still grep for them.
const (
	SentinelRateLimited   = "TOKEN LIMIT EXCEEDED"
	SentinelEmptyResponse = "ERROR: Empty response"
	SentinelAPIError      = "API ERROR"
	SentinelChatError     = "ChatGPT ERROR"
	SentinelError         = "ERROR"
)

// SentinelText maps a provider error onto its legacy sentinel string. It is
// intended for log output and external text boundaries only; program logic
// should classify with errors.Is against the taxonomy above.
func SentinelText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRateLimited):
		return SentinelRateLimited
	case errors.Is(err, ErrEmptyResponse):
		return SentinelEmptyResponse
	case errors.Is(err, ErrAPI):
		return SentinelAPIError
	default:
		return SentinelError
	}
}

// IsSentinel reports whether s is one of the legacy sentinel strings. The
// retry engine uses this as a defensive boundary check: a response body that
// consists of a sentinel literal is treated as a transport failure, never
// handed to validation.
func IsSentinel(s string) bool {
	switch s {
	case SentinelRateLimited, SentinelEmptyResponse, SentinelAPIError, SentinelChatError, SentinelError:
		return true
	}
	return false
}
