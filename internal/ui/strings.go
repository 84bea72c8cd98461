package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// truncate shortens value to limit runes, ending in "..." when cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if width <= 0 || n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// cell truncates then pads so columns line up.
func cell(s string, width int) string {
	return padRight(truncate(s, width), width)
}

// formatDuration renders seconds as m:ss or h:mm:ss.
func formatDuration(seconds int64) string {
	if seconds <= 0 {
		return "--:--"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// matcher reports whether names contain a query, ignoring case and width
// differences via Unicode case folding.
type matcher struct {
	folded string
	caser  cases.Caser
}

func newMatcher(query string) matcher {
	caser := cases.Fold()
	return matcher{folded: caser.String(strings.TrimSpace(query)), caser: caser}
}

func (m matcher) Match(names ...string) bool {
	if m.folded == "" {
		return true
	}
	for _, name := range names {
		if strings.Contains(m.caser.String(name), m.folded) {
			return true
		}
	}
	return false
}
