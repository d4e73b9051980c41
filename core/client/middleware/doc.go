// Package middleware provides composable send middlewares for the client
// package: structured request/response logging via slog, per-call deadlines,
// and token usage accounting. Install them with client.WithMiddlewares; the
// first middleware passed is the outermost wrapper.
//
// Retry is deliberately NOT a middleware here. The retry-validate-cleanup
// engine owns the attempt loop, because a retry decision depends on
// validation and extraction outcomes that a transport-level middleware cannot
// see.
package middleware
