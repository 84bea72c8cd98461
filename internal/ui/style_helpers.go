package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barPainter renders segments on a solid background. Lipgloss emits a reset
// after every styled run, so spaces between runs must be painted too.
type barPainter struct {
	bg    lipgloss.Color
	space string
}

func newBarPainter(bgColor string) barPainter {
	bg := lipgloss.Color(bgColor)
	return barPainter{bg: bg, space: lipgloss.NewStyle().Background(bg).Render(" ")}
}

// Render paints text word by word with style on the bar background.
func (b barPainter) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return styled.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

func (b barPainter) Spaces(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with a painted separator.
func (b barPainter) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// Label renders "key value" with the key muted.
func (b barPainter) Label(key, value string, keyStyle, valueStyle lipgloss.Style) string {
	return b.Render(key, keyStyle) + b.space + b.Render(value, valueStyle)
}
