package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-note-vault/models"
)

const (
	editorTitle = iota
	editorContent
)

// editorModel edits one note. noteID is zero for a note that is not in the
// vault yet.
type editorModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	noteID     int64
	submitting bool
}

func newEditorModel(note *models.Note) editorModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 60

	content := textarea.New()
	content.Placeholder = "Content"
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetWidth(72)
	content.SetHeight(12)

	m := editorModel{title: title, content: content}
	if note != nil {
		m.noteID = note.ID
		m.title.SetValue(note.Title)
		m.content.SetValue(note.Content)
	}
	m.title.Focus()
	return m
}

func (m editorModel) editing() bool {
	return m.noteID != 0
}

func (m editorModel) values() (title, content string) {
	return m.title.Value(), m.content.Value()
}

func (m editorModel) toggleFocus() editorModel {
	if m.focus == editorTitle {
		m.title.Blur()
		m.content.Focus()
		m.focus = editorContent
		return m
	}
	m.content.Blur()
	m.title.Focus()
	m.focus = editorTitle
	return m
}

func (m *editorModel) setSize(width, height int) {
	if width > 10 {
		m.content.SetWidth(width - 8)
		m.title.Width = width - 20
	}
	if height > 16 {
		m.content.SetHeight(height - 16)
	}
}

func (m editorModel) View() string {
	var b strings.Builder
	b.WriteString("Title:\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nContent:\n")
	b.WriteString(m.content.View())
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}

	header := "NEW NOTE"
	hotKeys := "ctrl+s: add  tab: switch field  ctrl+y: copy content  esc: back"
	if m.editing() {
		header = "EDIT NOTE"
		hotKeys = "ctrl+s: save  tab: switch field  ctrl+y: copy content  ctrl+d: delete  esc: back"
	}
	return renderPage(header, b.String(), hotKeys)
}
