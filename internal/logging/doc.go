// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a compact console format for terminal
// runs and JSON for log files or machine consumption. Helpers mirror the
// slog attribute constructors so call sites stay terse, and a session
// identifier can be carried through context so every record of one
// conversion run is correlatable.
package logging
