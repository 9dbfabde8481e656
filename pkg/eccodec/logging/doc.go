// Package logging provides a minimal logging facade for code that handles
// key material.
//
// The package defines a Logger interface wrapping a subset of log/slog so
// applications can plug in their own implementation for testing or redaction
// policies, plus helpers for marking attributes whose values must never reach
// a log line:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "x25519 key generated", logging.Redacted("private_key"))
//	// Logs: private_key="[redacted]"
//
// The codec itself never logs; this facade exists for callers that wrap
// decode failures or key generation with their own observability.
package logging
