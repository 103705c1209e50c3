package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	listBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Entry list styles.
var (
	entryIdleStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	entryRunningStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	entryCompletedStyle = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
	entryDraftStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	entryDeleteStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	entryMetaStyle      = lipgloss.NewStyle().Foreground(colorDim)
	elapsedStyle        = lipgloss.NewStyle().Foreground(colorCyan)
	elapsedRunningStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Header badge styles.
var (
	badgeIdleStyle   = lipgloss.NewStyle().Foreground(colorDim)
	badgeActiveStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	totalTimeStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
