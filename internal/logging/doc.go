// Package logging provides structured logging for sonoffctl.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the tool. CLI output is the primary user
// interface, so logging is silent by default and only activates when the
// SONOFFCTL_LOG_LEVEL environment variable is set:
//
//	SONOFFCTL_LOG_LEVEL=debug sonoffctl info --device 192.168.1.75
//
// # Log Levels
//
//   - Debug: request/response bodies for each device exchange
//   - Info: normal operations
//   - Warn: non-fatal issues (registry save failures)
//   - Error: command failures
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("Device request",
//	    zap.String("device", "http://192.168.1.75:8081"),
//	    zap.String("endpoint", "switches"),
//	)
//
// Log output goes to stderr so it never mixes with command output on
// stdout. All logging functions are safe for concurrent use.
package logging
