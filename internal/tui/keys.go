package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("Ctrl+h", "help"),
	),
}

// EntryListKeys are active when the entry list is focused.
type EntryListKeys struct {
	Up            key.Binding
	Down          key.Binding
	Add           key.Binding
	Edit          key.Binding
	Enter         key.Binding
	StartStop     key.Binding
	Complete      key.Binding
	Uncomplete    key.Binding
	Reset         key.Binding
	AddTime       key.Binding
	SubTime       key.Binding
	Note          key.Binding
	Link          key.Binding
	Unlink        key.Binding
	Delete        key.Binding
	Refresh       key.Binding
	ShowCompleted key.Binding
}

var entryListKeys = EntryListKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add entry"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit entry"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "edit"),
	),
	StartStop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start/stop"),
	),
	Complete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "done"),
	),
	Uncomplete: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "reopen"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset timer"),
	),
	AddTime: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "adjust 5m"),
	),
	SubTime: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("+/-", "adjust 5m"),
	),
	Note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "note"),
	),
	Link: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "link record"),
	),
	Unlink: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "unlink"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	ShowCompleted: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "show completed"),
	),
}

// WindowKeys switch the active time window.
type WindowKeys struct {
	Day       key.Binding
	Yesterday key.Binding
	Week      key.Binding
	Month     key.Binding
}

var windowKeys = WindowKeys{
	Day: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Today"),
	),
	Yesterday: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Yesterday"),
	),
	Week: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Week"),
	),
	Month: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Month"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Save   key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var overlayKeys = OverlayKeys{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
