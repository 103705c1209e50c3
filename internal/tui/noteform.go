package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// NoteForm is the note editing overlay.
type NoteForm struct {
	entryID   string
	entryName string
	area      textarea.Model
	width     int
}

// NewNoteForm creates a note form prefilled with the entry's note.
func NewNoteForm(entryID, entryName, note string, width int) *NoteForm {
	ta := textarea.New()
	ta.Placeholder = "Notes for this entry"
	ta.SetWidth(width - 8)
	ta.SetHeight(5)
	ta.SetValue(note)
	ta.Focus()

	return &NoteForm{
		entryID:   entryID,
		entryName: entryName,
		area:      ta,
		width:     width,
	}
}

// EntryID returns the id of the entry the note belongs to.
func (nf *NoteForm) EntryID() string {
	return nf.entryID
}

// Note returns the current note text.
func (nf *NoteForm) Note() string {
	return nf.area.Value()
}

// Area returns the textarea model for update forwarding.
func (nf *NoteForm) Area() *textarea.Model {
	return &nf.area
}

// View renders the note form.
func (nf *NoteForm) View() string {
	formWidth := nf.width
	if formWidth > 60 {
		formWidth = 60
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := []string{
		overlayTitleStyle.Render("Note — " + nf.entryName),
		nf.area.View(),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s save  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
