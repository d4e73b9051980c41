package ai

import (
	"errors"
	"fmt"
	"testing"
)

// TestSentinelText verifies the mapping from the error taxonomy to the legacy
// sentinel strings, including wrapped errors.
func TestSentinelText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "rate limited",
			err:  ErrRateLimited,
			want: SentinelRateLimited,
		},
		{
			name: "wrapped rate limited",
			err:  fmt.Errorf("call failed: %w", ErrRateLimited),
			want: SentinelRateLimited,
		},
		{
			name: "empty response",
			err:  ErrEmptyResponse,
			want: SentinelEmptyResponse,
		},
		{
			name: "api error",
			err:  fmt.Errorf("%w: status 500", ErrAPI),
			want: SentinelAPIError,
		},
		{
			name: "unclassified error",
			err:  errors.New("connection reset"),
			want: SentinelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SentinelText(tt.err); got != tt.want {
				t.Errorf("SentinelText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestIsSentinel verifies sentinel detection by value, including the legacy
// chat-path literal.
func TestIsSentinel(t *testing.T) {
	for _, s := range []string{
		SentinelRateLimited,
		SentinelEmptyResponse,
		SentinelAPIError,
		SentinelChatError,
		SentinelError,
	} {
		if !IsSentinel(s) {
			t.Errorf("IsSentinel(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "ok", "error", "TOKEN LIMIT"} {
		if IsSentinel(s) {
			t.Errorf("IsSentinel(%q) = true, want false", s)
		}
	}
}
