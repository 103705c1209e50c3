package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h", "Toggle help"},
			{"1/2/3/4", "Today / Yesterday / Week / Month"},
			{"c", "Toggle completed entries"},
			{"R", "Refresh from daemon"},
		},
	},
	{
		title: "Entries",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate entries"},
			{"a", "Add new entry"},
			{"e / Enter", "Edit name and category"},
			{"s", "Start / stop timer"},
			{"d", "Mark done (stops timer)"},
			{"u", "Reopen a done entry"},
			{"0", "Reset timer and dates"},
			{"+ / -", "Adjust time by five minutes"},
			{"n", "Edit note"},
			{"l", "Link external record"},
			{"L", "Unlink record"},
			{"x", "Delete (press twice)"},
		},
	},
	{
		title: "Overlays",
		keys: []helpKey{
			{"Ctrl+s", "Save"},
			{"Esc", "Cancel / Close"},
			{"Tab", "Next field"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or Ctrl+h to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
