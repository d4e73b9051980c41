// Package config holds the process-wide configuration for safegen. A Config
// is constructed once at startup — typically via [FromEnv] — and passed
// explicitly into provider constructors. Nothing in this module reads the
// environment after that point.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is the model used when none is configured and when a
	// legacy model or engine name is normalized away.
	DefaultModel = "gpt-5-nano"

	// DefaultRequestDelay is the fixed pause inserted before each provider
	// call to smooth bursty call patterns. It is a policy knob, not a
	// correctness requirement.
	DefaultRequestDelay = 100 * time.Millisecond
)

// Environment variable names read by FromEnv.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvModel   = "OPENAI_MODEL"
	EnvBaseURL = "OPENAI_API_BASE_URL"
)

// Config carries the credentials and defaults shared by provider and client
// construction. The zero value is usable for tests against local fakes; real
// deployments should populate it via [FromEnv].
type Config struct {
	// APIKey authenticates requests to the provider. Supplied out of band;
	// never logged.
	APIKey string

	// Model is the default model name for chat requests. Defaults to
	// DefaultModel when empty.
	Model string

	// BaseURL overrides the provider's default API endpoint. Leave empty to
	// use the provider default.
	BaseURL string

	// RequestDelay is the fixed pre-call pause. Defaults to
	// DefaultRequestDelay in FromEnv; zero disables the pause entirely.
	RequestDelay time.Duration
}

// FromEnv builds a Config from the process environment. A .env file in the
// working directory is loaded first when present (missing files are not an
// error), then OPENAI_API_KEY, OPENAI_MODEL and OPENAI_API_BASE_URL are read.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIKey:       os.Getenv(EnvAPIKey),
		Model:        os.Getenv(EnvModel),
		BaseURL:      os.Getenv(EnvBaseURL),
		RequestDelay: DefaultRequestDelay,
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}
