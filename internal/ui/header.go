package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/sonar/pkg/subsonic"
)

// renderHeader renders the status bar: server identity, library scan, now
// playing count, and the latest poll or browse error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bar := newBarPainter(m.theme.Surface)
	compact := m.width < layoutCompactWidth
	snap := m.snapshot

	parts := []string{bar.Render("sonar", styles.Logo)}

	switch {
	case snap.IsOffline():
		parts = append(parts,
			bar.Render("● OFFLINE", styles.DangerText),
			bar.Render("Retrying...", styles.WarningText.Bold(true)))
	case !snap.HasServer:
		parts = append(parts, bar.Render("Connecting...", styles.WarningText.Bold(true)))
	default:
		parts = append(parts, bar.Render("● "+serverLabel(snap.Server), styles.SuccessText))
		if !compact {
			parts = append(parts, bar.Label("API", snap.Server.APIVersion, styles.MutedText, styles.Text))
			if snap.Server.OpenSubsonic {
				parts = append(parts, bar.Render("OpenSubsonic", styles.InfoText))
			}
		}
		if snap.HasScan {
			if snap.Scan.Scanning {
				parts = append(parts, bar.Label("Scanning", fmt.Sprintf("%d", snap.Scan.Count), styles.WarningText.Bold(true), styles.WarningText))
			} else if snap.Scan.Count > 0 {
				parts = append(parts, bar.Label("Library", fmt.Sprintf("%d", snap.Scan.Count), styles.MutedText, styles.Text))
			}
		}
		parts = append(parts, bar.Label("Playing", fmt.Sprintf("%d", len(snap.NowPlaying)), styles.MutedText, styles.Text))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bar.Render(ts, styles.MutedText))
	}

	maxErr := 80
	if compact {
		maxErr = 40
	}
	if snap.LastError != nil {
		parts = append(parts, bar.Label("ERROR", truncate(describeError(snap.LastError), maxErr), styles.DangerText, styles.DangerText))
	}
	if m.errorMsg != "" {
		parts = append(parts, bar.Label("!", truncate(m.errorMsg, maxErr), styles.WarningText.Bold(true), styles.WarningText))
	}
	if m.loading {
		parts = append(parts, bar.Render("Loading...", styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bar.Join(parts, "  "))
}

// serverLabel names the server, e.g. "navidrome 0.53.3" or "subsonic".
func serverLabel(info subsonic.ServerInfo) string {
	name := info.ServerType
	if name == "" {
		name = "subsonic"
	}
	if info.ServerVersion != "" {
		name += " " + info.ServerVersion
	}
	return name
}

// formatTimestamp formats the last snapshot time with a relative hint.
func (m Model) formatTimestamp() string {
	updated := m.snapshot.LastUpdated
	if updated.IsZero() {
		return ""
	}
	since := time.Since(updated)
	stamp := updated.Format("15:04:05")
	switch {
	case since < time.Minute:
		return stamp
	case since < time.Hour:
		return fmt.Sprintf("%s (%dm ago)", stamp, int(since.Minutes()))
	default:
		return fmt.Sprintf("%s (%dh ago)", stamp, int(since.Hours()))
	}
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bar := newBarPainter(m.theme.Surface)

	type hint struct{ key, desc string }
	var hints []hint
	switch m.view {
	case ViewAlbums:
		hints = []hint{{"enter", "Tracks"}, {"/", "Filter"}, {"o", listTypeLabel(m.listType)}, {"esc", "Back"}}
	case ViewTracks:
		hints = []hint{{"j/k", "Scroll"}, {"esc", "Back"}, {"r", "Reload"}}
	case ViewNowPlaying:
		hints = []hint{{"enter", "Open album"}, {"j/k", "Navigate"}}
	default:
		hints = []hint{{"enter", "Albums"}, {"/", "Filter"}, {"r", "Reload"}}
	}
	hints = append(hints, hint{"1/2/3", "Artists/Albums/Playing"}, hint{"?", "More"})

	segments := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		segments = append(segments, bar.Render(h.key, styles.AccentText)+bar.Render(":", styles.FaintText)+bar.Render(h.desc, styles.MutedText))
	}
	segments = append(segments, bar.Render("T", styles.AccentText)+bar.Render(":", styles.FaintText)+bar.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bar.Spaces(2)))
}
