package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone = 0
	confirmQuit = 1
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmQuit {
		return renderConfirmBar(
			"Unsaved changes. Quit anyway? (y/n)",
			width,
		)
	}

	// Error display
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	// Saved indicator
	if m.showSaved {
		return renderSavedBar(width)
	}

	// Context-sensitive key hints
	hints := getKeyHints(m)
	left := " " + hints

	// Connection status
	right := ""
	if m.connected {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Connected") + " "
	} else {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Disconnected") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Ctrl+s", "save") + "  " + keyHint("Esc", "cancel")
	}

	if e := m.entryList.Selected(); e != nil && e.IsPendingDelete {
		return keyHint("x/y", "confirm delete") + "  " + keyHint("Esc", "keep")
	}

	base := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help")

	return base + "  " + keyHint("a", "add") + "  " + keyHint("e", "edit") + "  " +
		keyHint("s", "start/stop") + "  " + keyHint("d", "done") + "  " +
		keyHint("n", "note") + "  " + keyHint("x", "delete") + "  " +
		keyHint("1-4", "window") + "  " + keyHint("c", "completed")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render("Saved"))
}
