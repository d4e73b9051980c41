package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lmorandi/safegen/config"
	"github.com/lmorandi/safegen/providers/ai"
)

// Client hosts the retry-validate-cleanup engine around a single LLM
// provider. Its fields are read-only after construction, so a Client is safe
// for concurrent use: concurrent invocations share nothing but the provider
// and the middleware chain.
type Client struct {
	provider     ai.Provider
	send         SendFunc
	logger       *slog.Logger
	defaultModel string
	requestDelay time.Duration
}

// Options holds the configurable knobs for [New]. Use the With* functions
// rather than constructing it directly.
type Options struct {
	logger       *slog.Logger
	middlewares  []Middleware
	requestDelay time.Duration
	delaySet     bool
	defaultModel string
}

// Option mutates Options during New.
type Option func(*Options)

// WithLogger sets the slog logger used for per-attempt diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithMiddlewares installs send middlewares around the provider call,
// outermost-first. See the middleware subpackage for logging and timeout
// implementations.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *Options) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// WithRequestDelay sets the fixed pause inserted before each provider call.
// Zero disables the pause. Defaults to [config.DefaultRequestDelay].
func WithRequestDelay(delay time.Duration) Option {
	return func(o *Options) {
		o.requestDelay = delay
		o.delaySet = true
	}
}

// WithDefaultModel sets the model used when a request does not name one. The
// provider applies its own configured default when this is unset.
func WithDefaultModel(model string) Option {
	return func(o *Options) {
		o.defaultModel = model
	}
}

// New creates a Client around the given provider. The provider must be
// non-nil and nil middlewares are rejected, so a misconfigured chain fails at
// construction instead of on the first request.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider must not be nil")
	}

	options := Options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	for i, mw := range options.middlewares {
		if mw == nil {
			return nil, fmt.Errorf("middleware at index %d is nil", i)
		}
	}

	if !options.delaySet {
		options.requestDelay = config.DefaultRequestDelay
	}

	return &Client{
		provider:     provider,
		send:         buildSendChain(provider, options.middlewares),
		logger:       options.logger,
		defaultModel: options.defaultModel,
		requestDelay: options.requestDelay,
	}, nil
}

// sendOptions holds per-call overrides.
type sendOptions struct {
	model     string
	gen       *ai.GenerationConfig
	skipDelay bool
}

// SendOption customizes a single call (and every attempt of a Generate loop).
type SendOption func(*sendOptions)

// WithModel overrides the model for this call.
func WithModel(model string) SendOption {
	return func(o *sendOptions) {
		o.model = model
	}
}

// WithGenerationConfig sets the sampling parameters for this call.
func WithGenerationConfig(gen *ai.GenerationConfig) SendOption {
	return func(o *sendOptions) {
		o.gen = gen
	}
}

// WithoutDelay skips the fixed pre-call pause for this call.
func WithoutDelay() SendOption {
	return func(o *sendOptions) {
		o.skipDelay = true
	}
}

// Send performs a single provider call through the middleware chain,
// preceded by the fixed pre-call pause unless disabled. The request is not
// mutated; per-call overrides are applied to a copy. Failures are returned as
// errors carrying the ai package taxonomy — Send itself never retries.
func (c *Client) Send(ctx context.Context, request ai.ChatRequest, opts ...SendOption) (*ai.ChatResponse, error) {
	var options sendOptions
	for _, opt := range opts {
		opt(&options)
	}

	req := request
	if options.model != "" {
		req.Model = options.model
	}
	if options.gen != nil {
		req.GenerationConfig = options.gen
	}
	if req.Model == "" && req.Engine == "" && c.defaultModel != "" {
		req.Model = c.defaultModel
	}

	if !options.skipDelay && c.requestDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.requestDelay):
		}
	}

	return c.send(ctx, req)
}

// Provider returns the provider this client was constructed with.
func (c *Client) Provider() ai.Provider {
	return c.provider
}
