package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/timetrack-io/timetrack/internal/track"
)

var windowTabs = []string{"Today", "Yesterday", "Week", "Month"}

func renderHeader(filters track.ViewFilters, totalTime, runningName string, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Timetrack")

	tabs := renderTabs(windowTabs, int(filters.Window))

	completed := ""
	if filters.Policy == track.PolicyExtended && filters.ShowCompleted {
		completed = inactiveTabStyle.Render(" +done")
	}

	badge := renderRunningBadge(runningName)

	left := " " + dot + " " + name + "  " + tabs + completed
	right := totalTimeStyle.Render("Σ "+totalTime) + "  " + badge + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

func renderRunningBadge(runningName string) string {
	if runningName == "" {
		return badgeIdleStyle.Render("● Idle")
	}
	return badgeActiveStyle.Render("▶ " + ansi.Truncate(runningName, 24, "…"))
}
