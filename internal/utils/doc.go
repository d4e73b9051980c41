// Package utils provides shared low-level helpers used throughout the safegen
// internals: a generic HTTP POST helper for synchronous JSON round-trips with
// AI provider APIs, and generic pointer and string utilities.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips, [Ptr] for
// converting values to pointers, and [TruncateString] for log-safe previews
// of large payloads.
package utils
