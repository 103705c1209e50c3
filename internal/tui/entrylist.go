package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/timetrack-io/timetrack/internal/track"
)

// EntryList renders the filtered entry collection and tracks the cursor.
// It works on snapshots; the model refreshes them from the store after
// every state change.
type EntryList struct {
	visible      []*track.Entry
	cursor       int
	scrollOffset int
	height       int
}

// NewEntryList creates an empty entry list.
func NewEntryList() *EntryList {
	return &EntryList{}
}

// SetEntries replaces the snapshot with the entries visible under the
// current filters, keeping the cursor on the same entry where possible.
func (el *EntryList) SetEntries(entries []*track.Entry, filters track.ViewFilters) {
	selected := el.SelectedID()

	el.visible = el.visible[:0]
	for _, e := range entries {
		if !track.Hidden(e, filters) {
			el.visible = append(el.visible, e)
		}
	}

	el.cursor = 0
	if selected != "" {
		for i, e := range el.visible {
			if e.ID == selected {
				el.cursor = i
				break
			}
		}
	}
	el.clampCursor()
	el.ensureVisible()
}

// SetHeight sets the visible height.
func (el *EntryList) SetHeight(h int) {
	el.height = h
}

// Selected returns the entry under the cursor, or nil.
func (el *EntryList) Selected() *track.Entry {
	if el.cursor < 0 || el.cursor >= len(el.visible) {
		return nil
	}
	return el.visible[el.cursor]
}

// SelectedID returns the id of the entry under the cursor, or empty.
func (el *EntryList) SelectedID() string {
	if e := el.Selected(); e != nil {
		return e.ID
	}
	return ""
}

// Select moves the cursor to the entry with the given id.
func (el *EntryList) Select(id string) {
	for i, e := range el.visible {
		if e.ID == id {
			el.cursor = i
			el.ensureVisible()
			return
		}
	}
}

// SelectAt moves the cursor to the row at the given visible index.
func (el *EntryList) SelectAt(index int) {
	row := el.scrollOffset + index
	if row >= 0 && row < len(el.visible) {
		el.cursor = row
	}
}

// MoveUp moves the cursor up.
func (el *EntryList) MoveUp() {
	el.cursor--
	el.clampCursor()
	el.ensureVisible()
}

// MoveDown moves the cursor down.
func (el *EntryList) MoveDown() {
	el.cursor++
	el.clampCursor()
	el.ensureVisible()
}

func (el *EntryList) clampCursor() {
	if el.cursor >= len(el.visible) {
		el.cursor = len(el.visible) - 1
	}
	if el.cursor < 0 {
		el.cursor = 0
	}
}

func (el *EntryList) ensureVisible() {
	if el.cursor < el.scrollOffset {
		el.scrollOffset = el.cursor
	}
	if el.height > 0 && el.cursor >= el.scrollOffset+el.height {
		el.scrollOffset = el.cursor - el.height + 1
	}
}

// View renders the entry list.
func (el *EntryList) View(width int) string {
	if len(el.visible) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No entries in this view. Press 'a' to add one.")
	}

	var lines []string
	end := el.scrollOffset + el.height
	if end > len(el.visible) {
		end = len(el.visible)
	}

	for i := el.scrollOffset; i < end; i++ {
		e := el.visible[i]
		line := el.renderRow(e, width-2)
		if i == el.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, "  "+line)
	}

	// Scroll indicators
	if el.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(el.visible) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (el *EntryList) renderRow(e *track.Entry, width int) string {
	badge := entryBadge(e)

	name := e.Name
	if e.IsEditing && e.DraftName != "" {
		name = e.DraftName
	}
	if name == "" {
		name = "(unnamed)"
	}

	var markers []string
	if e.Description != "" {
		markers = append(markers, "≡")
	}
	if e.LinkedRecordID != "" {
		markers = append(markers, "⚲ "+e.LinkedRecordLabel)
	}
	if e.Busy {
		markers = append(markers, "…")
	}

	meta := e.CategoryName
	if len(markers) > 0 {
		meta += "  " + strings.Join(markers, " ")
	}

	if e.IsPendingDelete {
		meta = "delete? press x/y to confirm, Esc to keep"
	}

	left := fmt.Sprintf("%s %s  %s", badge, nameStyleFor(e).Render(name), entryMetaStyle.Render(meta))
	right := elapsedFor(e)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, width-lipgloss.Width(right)-2, "…")
		gap = width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
	}

	return left + strings.Repeat(" ", gap) + right
}

func entryBadge(e *track.Entry) string {
	switch {
	case e.IsPendingDelete:
		return entryDeleteStyle.Render("[✗]")
	case e.IsNew, e.IsEditing:
		return entryDraftStyle.Render("[*]")
	case e.IsRunning:
		return entryRunningStyle.Render("[▶]")
	case e.Completed:
		return entryCompletedStyle.Render("[✓]")
	default:
		return entryMetaStyle.Render("[ ]")
	}
}

func nameStyleFor(e *track.Entry) lipgloss.Style {
	switch {
	case e.IsPendingDelete:
		return entryDeleteStyle
	case e.IsNew, e.IsEditing:
		return entryDraftStyle
	case e.IsRunning:
		return entryRunningStyle
	case e.Completed:
		return entryCompletedStyle
	default:
		return entryIdleStyle
	}
}

func elapsedFor(e *track.Entry) string {
	if e.IsRunning {
		return elapsedRunningStyle.Render(e.Elapsed)
	}
	return elapsedStyle.Render(e.Elapsed)
}
