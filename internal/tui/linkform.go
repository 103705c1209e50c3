package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// LinkForm is the record-link overlay: a single input for the external
// record id.
type LinkForm struct {
	entryID   string
	entryName string
	input     textinput.Model
	width     int
}

// NewLinkForm creates a link form prefilled with the current record id.
func NewLinkForm(entryID, entryName, recordID string, width int) *LinkForm {
	ti := textinput.New()
	ti.Placeholder = "job-1042"
	ti.CharLimit = 80
	ti.Width = width - 8
	ti.SetValue(recordID)
	ti.Focus()

	return &LinkForm{
		entryID:   entryID,
		entryName: entryName,
		input:     ti,
		width:     width,
	}
}

// EntryID returns the id of the entry being linked.
func (lf *LinkForm) EntryID() string {
	return lf.entryID
}

// RecordID returns the trimmed record id; empty unlinks.
func (lf *LinkForm) RecordID() string {
	return strings.TrimSpace(lf.input.Value())
}

// Input returns the input model for update forwarding.
func (lf *LinkForm) Input() *textinput.Model {
	return &lf.input
}

// View renders the link form.
func (lf *LinkForm) View() string {
	formWidth := lf.width
	if formWidth > 60 {
		formWidth = 60
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := []string{
		overlayTitleStyle.Render("Link Record — " + lf.entryName),
		lipgloss.NewStyle().Bold(true).Render("Record ID:"),
		lf.input.View(),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s save  |  leave empty to unlink  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
