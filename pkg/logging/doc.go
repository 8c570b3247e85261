// Package logging provides structured logging utilities for the command center
// server and CLI.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults so
// every binary logs the same way. It supports environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs.
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
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ccd", version)
//	    slog.Info("processing request", "lab", "05")
//	}
//
// Setting an explicit log level (the CLI --log-level flag does this):
//
//	logging.SetDefaultStructuredLoggerWithLevel("ccctl", version, "warn")
//
// Adapting to APIs that want a *log.Logger, such as http.Server.ErrorLog:
//
//	stdLogger := logging.NewLogLogger(slog.LevelWarn, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug ccctl validate --lab 05
//	LOG_LEVEL=error ccd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "lab validated",
//	    "module": "ccd",
//	    "version": "v1.0.0",
//	    "lab": "05"
//	}
//
// Debug logs also include a "source" object with function, file and line.
package logging
