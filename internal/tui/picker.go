package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	pickerPath = iota
	pickerKey
)

// pickerModel is the start screen: a vault path and its hex key.
type pickerModel struct {
	inputs []textinput.Model
	focus  int
}

func newPickerModel(path string) pickerModel {
	inputs := make([]textinput.Model, 2)

	inputs[pickerPath] = textinput.New()
	inputs[pickerPath].Placeholder = "path/to/notes.vault"
	inputs[pickerPath].Width = 60
	inputs[pickerPath].SetValue(path)

	inputs[pickerKey] = textinput.New()
	inputs[pickerKey].Placeholder = "64 hex characters"
	inputs[pickerKey].Width = 64
	inputs[pickerKey].CharLimit = 128
	inputs[pickerKey].EchoMode = textinput.EchoPassword
	inputs[pickerKey].EchoCharacter = '•'

	m := pickerModel{inputs: inputs}
	if path != "" {
		m.focus = pickerKey
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m pickerModel) path() string {
	return strings.TrimSpace(m.inputs[pickerPath].Value())
}

func (m pickerModel) key() string {
	return strings.TrimSpace(m.inputs[pickerKey].Value())
}

// clearKey drops the key from the input so it does not outlive the request.
func (m *pickerModel) clearKey() {
	m.inputs[pickerKey].Reset()
}

func (m *pickerModel) reset() {
	m.inputs[pickerPath].Reset()
	m.inputs[pickerKey].Reset()
	m.inputs[m.focus].Blur()
	m.focus = pickerPath
	m.inputs[m.focus].Focus()
}

func (m pickerModel) focusNext() pickerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m pickerModel) focusPrev() pickerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m pickerModel) View(busy bool) string {
	var b strings.Builder
	b.WriteString("Select or create a vault\n\n")
	b.WriteString("Vault file: ")
	b.WriteString(m.inputs[pickerPath].View())
	b.WriteString("\n")
	b.WriteString("Key (hex):  ")
	b.WriteString(m.inputs[pickerKey].View())
	if busy {
		b.WriteString("\n\nWorking...")
	}

	return renderPage("NOTEVAULT", b.String(),
		"enter: open  ctrl+n: create  tab: next field  ctrl+b: about  esc: quit")
}
