// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions
// and environment-aware configuration, so the CLI and supporting tooling
// log the same way.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("resolving reference", "text", ref)
//	logutil.Info("batch finished", "count", n)
//	logutil.Warn("placeholder authority substituted", "url", text)
//	logutil.Error("cannot read input", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLSCOPE_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-08-25T10:30:00Z","level":"INFO","msg":"batch finished","count":12}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2026-08-25T10:30:00Z level=INFO msg="batch finished" count=12
package logutil
