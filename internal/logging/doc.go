// Package logging provides the diagnostic stream for tagwm.
//
// Loggers are plain [log/slog] loggers. Text output goes through a
// TTY-aware [Handler] that colors level names when the writer is a
// terminal; JSON output uses the standard library handler. A [Fanout]
// handler duplicates records to several sinks, which the CLI uses to
// mirror the diagnostic stream into a log file.
//
// Configuration warnings (unknown layout names, unresolved commands,
// missing screen sections) are logged at Warn level with structured
// attributes:
//
//	logger.Warn("unknown command", "section", "keys.key", "name", "spwan", "hint", "spawn")
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework:
//
//	opts := wmconfig.Options{Logger: logging.ForTest(t)}
package logging
