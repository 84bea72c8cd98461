// Package logging builds the slog loggers used by the sonar CLI and browser.
//
// # Overview
//
// Everything in sonar logs through log/slog. This package picks the handler
// and the destinations from config.Logging so that callers only ever see a
// *slog.Logger. Components tag their records with a "component" attribute
// ("subsonic", "poller", "ui") rather than with separate loggers.
//
// # Constructors
//
//   - New: explicit Options (level, format, output paths)
//   - NewFromConfig: the CLI logger, stderr plus logging.file when set
//   - NewForTUI: the browser logger, logging.file only, or a discard logger
//     when no file is configured, because the alternate screen owns the
//     terminal
//   - NewNop: a logger that drops everything, for tests and library callers
//
// # Formats
//
// "console" writes one line per record with the component pulled in front
// of the message:
//
//	2024-10-10T14:32:15Z WARN poller: ping failed error="execute request: ..."
//
// Timestamps are UTC RFC 3339 and durations are rounded to milliseconds.
// Values that are empty or contain whitespace, '=' or '"' are quoted;
// groups are flattened into dotted keys.
//
// "json" uses slog's JSON handler with short keys and lower-case levels:
//
//	{"ts":"2024-10-10T14:32:15Z","level":"warn","msg":"ping failed","component":"poller"}
//
// At debug level the JSON handler also records the source file and line as
// "file.go:NN". Unknown format names are an error; unknown level names fall
// back to info.
//
// # Outputs
//
// Output paths "stdout" and "stderr" name the standard streams. Anything
// else is a file opened for append, with its directory created first.
// Duplicate paths are written once and several outputs share one
// io.MultiWriter. internal/logtail reads these files back for the logs
// subcommand, so both formats are kept parseable line by line.
//
// # Testing
//
// logger_test.go writes through each format into temporary files and
// checks the rendered lines, the rejection of unknown formats, the discard
// logger NewForTUI returns without a file, and level parsing.
package logging
