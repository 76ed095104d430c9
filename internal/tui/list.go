package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-vault/models"
)

type listModel struct {
	notes   []models.NoteHeader
	idx     int
	loading bool
}

func newListModel(notes []models.NoteHeader) listModel {
	m := listModel{}
	m.setNotes(notes)
	return m
}

// setNotes replaces the notes and keeps the cursor inside the list.
func (m *listModel) setNotes(notes []models.NoteHeader) {
	m.notes = notes
	m.loading = false
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.NoteHeader, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.NoteHeader{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) View(vaultPath string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.notes) == 0:
		b.WriteString("No notes yet")
	default:
		for i, note := range m.notes {
			line := fmt.Sprintf("%3d  %s", note.ID, fitText(note.Title, 50))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return renderPage("VAULT "+fitText(vaultPath, 60), b.String(),
		"enter: open  n: new  d: delete  r: refresh  esc: close vault  q: quit")
}
