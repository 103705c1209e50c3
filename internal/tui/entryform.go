package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/timetrack-io/timetrack/internal/rpc"
)

// EntryForm is the add/edit entry overlay form: a name input plus a
// category selector cycled with the arrow keys.
type EntryForm struct {
	mode    string // "add" or "edit"
	entryID string

	nameInput  textinput.Model
	categories []*rpc.Category
	catIndex   int

	focusIndex int // 0=name, 1=category
	width      int
}

// NewEntryForm creates a new entry form.
func NewEntryForm(mode string, entryID string, categories []*rpc.Category, width int) *EntryForm {
	ni := textinput.New()
	ni.Placeholder = "What are you working on?"
	ni.CharLimit = 200
	ni.Width = width - 8

	ef := &EntryForm{
		mode:       mode,
		entryID:    entryID,
		nameInput:  ni,
		categories: categories,
		width:      width,
	}

	ef.nameInput.Focus()

	return ef
}

// PreFill fills the form with existing entry data for editing.
func (ef *EntryForm) PreFill(name, categoryID string) {
	ef.nameInput.SetValue(name)
	for i, c := range ef.categories {
		if c.ID == categoryID {
			ef.catIndex = i
			break
		}
	}
}

// EntryID returns the id of the entry the form edits.
func (ef *EntryForm) EntryID() string {
	return ef.entryID
}

// Name returns the current name value.
func (ef *EntryForm) Name() string {
	return ef.nameInput.Value()
}

// CategoryID returns the selected category id, or empty when no categories
// exist.
func (ef *EntryForm) CategoryID() string {
	if len(ef.categories) == 0 {
		return ""
	}
	return ef.categories[ef.catIndex].ID
}

// FocusIndex returns the currently focused field index.
func (ef *EntryForm) FocusIndex() int {
	return ef.focusIndex
}

// FocusNext moves to the next field.
func (ef *EntryForm) FocusNext() {
	ef.focusIndex = (ef.focusIndex + 1) % 2
	if ef.focusIndex == 0 {
		ef.nameInput.Focus()
	} else {
		ef.nameInput.Blur()
	}
}

// NextCategory cycles the category selector forward.
func (ef *EntryForm) NextCategory() {
	if len(ef.categories) > 0 {
		ef.catIndex = (ef.catIndex + 1) % len(ef.categories)
	}
}

// PrevCategory cycles the category selector backward.
func (ef *EntryForm) PrevCategory() {
	if len(ef.categories) > 0 {
		ef.catIndex = (ef.catIndex + len(ef.categories) - 1) % len(ef.categories)
	}
}

// NameInput returns the name input model for update forwarding.
func (ef *EntryForm) NameInput() *textinput.Model {
	return &ef.nameInput
}

// View renders the entry form.
func (ef *EntryForm) View() string {
	title := "Add Entry"
	if ef.mode == "edit" {
		title = "Edit Entry"
	}

	formWidth := ef.width
	if formWidth > 60 {
		formWidth = 60
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, 8)
	parts = append(parts, overlayTitleStyle.Render(title))

	label := lipgloss.NewStyle().Bold(true).Render("Name:")
	parts = append(parts, label, ef.nameInput.View(), "")

	label = lipgloss.NewStyle().Bold(true).Render("Category:")
	parts = append(parts, label+" "+ef.renderCategory(), "")

	footer := lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s save  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	content := strings.Join(parts, "\n")
	return overlayStyle.Width(formWidth).Render(content)
}

func (ef *EntryForm) renderCategory() string {
	if len(ef.categories) == 0 {
		return entryMetaStyle.Render("(none)")
	}
	name := ef.categories[ef.catIndex].Name
	if ef.focusIndex == 1 {
		return lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Render("‹ "+name+" ›") +
			lipgloss.NewStyle().Foreground(colorDim).Render("  (←/→ to change)")
	}
	return lipgloss.NewStyle().Foreground(colorCyan).Render(name)
}
