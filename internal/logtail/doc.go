// Package logtail reads the end of sonar's log file.
//
// # Overview
//
// The logs subcommand shows recent activity without a pager or tail(1).
// This package does the reading and the severity filtering; the command
// does the printing. It never writes to the file and never follows it.
//
// # Core Functionality
//
//  1. Read: the last N lines of a file, in order
//  2. Level: the severity recorded on one line, if any
//  3. Filter: drop lines below a severity
//  4. ParseLevel: the --level flag value as a slog.Level
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries and scans the file once:
//
//	1. Allocate a ring of maxLines strings
//	2. For each line: store it at the next slot, wrapping at maxLines
//	3. Fewer than maxLines seen: return them as read
//	4. Otherwise: return the ring starting at the oldest slot
//
// Memory stays proportional to maxLines, not to the file. The scanner
// accepts lines up to 1 MiB, enough for JSON records with long attribute
// values. maxLines <= 0 returns every line.
//
//	lines, err := logtail.Read(cfg.Logging.File, 200)
//	if err != nil {
//		return fmt.Errorf("read log: %w", err)
//	}
//	for _, line := range logtail.Filter(lines, slog.LevelWarn) {
//		fmt.Println(line)
//	}
//
// # Recognised Formats
//
// Level understands both handlers built by internal/logging:
//
//	2024-10-10T14:32:15Z WARN poller: ping failed error="..."
//	{"ts":"2024-10-10T14:32:15Z","level":"warn","msg":"ping failed"}
//
// In the console form the level is the second field, upper case. In the
// JSON form it is the "level" key, matched case-insensitively, with
// "warning" accepted for "warn". Anything else has no level.
//
// # Filtering
//
// Lines without a level are continuation output, such as a wrapped stack
// trace or a multi-line message, and follow the verdict of the last line
// that had one. Leading unlabelled lines are kept.
//
// # Error Handling
//
// A missing file is not an error: Read returns no lines, since a fresh
// install has not logged anything yet. Other open or scan failures are
// returned wrapped. ParseLevel rejects unknown names so a typo in --level
// is reported instead of silently showing everything.
//
// # Testing
//
// logtail_test.go covers the ring buffer for short files and for files
// that wrap it more than once, a missing file, both line formats,
// continuation handling in Filter, and ParseLevel.
package logtail
