// Package logging constructs the slog loggers used across the CLI, with a
// compact console handler for interactive use and a JSON handler for
// machine-readable output.
package logging
