// Package logging provides structured logging utilities for vercheck components.
//
// # Overview
//
// This package wraps the standard library slog package with vercheck-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vercheck", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("checking version", "command", "bash --version")
//	    slog.Debug("detailed state", "candidates", candidates)
//	    slog.Error("check failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vercheck", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug vercheck check -c "bash --version" -d 5.2.0
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "check completed",
//	    "module": "vercheck",
//	    "version": "v1.0.0",
//	    "outcome": "equal"
//	}
//
// Logs go to stderr so the structured check result on stdout stays parseable.
package logging
