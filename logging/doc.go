// Package logging provides a minimal logging interface and adapters for
// MineMind.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the knowledge base, strategies and runner use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ZapAdapter wrapping go.uber.org/zap (used by the CLI)
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	agent, err := minemind.New(board, func(o *minemind.Options) {
//		o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
