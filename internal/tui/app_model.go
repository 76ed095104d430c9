package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

type screen int

const (
	screenPicker screen = iota
	screenList
	screenEditor
)

// clipboardWrite is replaced in tests; the system clipboard is not available
// on CI machines.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	vault         service.ClientVaultService
	buildInfo     models.AppBuildInfo
	currentScreen screen

	picker pickerModel
	list   listModel
	editor editorModel

	vaultPath string
	// generation is bumped every time the vault is closed
	generation int
	busy       bool
	status    string
	width     int
	height    int

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, vaultPath string) appModel {
	m := appModel{
		ctx:           ctx,
		vault:         services.VaultService,
		currentScreen: screenPicker,
		picker:        newPickerModel(vaultPath),
		editor:        newEditorModel(nil),
	}
	if services.AppInfoService != nil {
		m.buildInfo = services.AppInfoService.BuildInfo(ctx)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m.quit()
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.busy = true
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case vaultCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = app.MsgVaultCreated
		return m, nil
	case vaultOpenedMsg:
		m.busy = false
		m.picker.clearKey()
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.vaultPath = msg.path
		m.list = newListModel(msg.notes)
		m.currentScreen = screenList
		m.status = app.MsgVaultOpened
		return m, nil
	case listLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.list.loading = false
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.setNotes(msg.notes)
		return m, nil
	case noteLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.editor = m.newEditor(&msg.note)
		m.currentScreen = screenEditor
		return m, nil
	case noteSavedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.busy = false
		m.editor.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = app.MsgNoteUpdated
		if msg.added {
			m.status = app.MsgNoteAdded
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case noteDeletedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.busy = false
		m.pendingDelete = 0
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = app.MsgNoteHidden
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case copiedMsg:
		if msg.err != nil {
			m.status = app.MsgClipboardFailed
		} else {
			m.status = app.MsgContentCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.setSize(msg.Width, msg.Height)
		return m, nil
	}

	switch m.currentScreen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenList:
		return m.updateList(msg)
	case screenEditor:
		return m.updateEditor(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
		return appStyle.Render(body)
	}

	switch m.currentScreen {
	case screenPicker:
		body = m.picker.View(m.busy)
	case screenList:
		body = m.list.View(m.vaultPath)
	case screenEditor:
		body = m.editor.View()
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorOverlay.message = service.StatusMessage(err)
}

func (m *appModel) showMessage(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// quit closes the open vault so the key is wiped before the program exits.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.vault.CloseVault()
	return m, tea.Quit
}

func (m appModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.quit()
		case key.Matches(keyMsg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.picker = m.picker.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.picker = m.picker.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.create):
			if m.busy {
				return m, nil
			}
			path, vaultKey := m.picker.path(), m.picker.key()
			if path == "" {
				m.showMessage(app.MsgPathRequired)
				return m, nil
			}
			if vaultKey == "" {
				m.showMessage(app.MsgKeyRequired)
				return m, nil
			}
			m.busy = true
			m.status = ""
			if key.Matches(keyMsg, keys.create) {
				return m, m.cmdCreateVault(path, vaultKey)
			}
			return m, m.cmdOpenVault(path, vaultKey)
		}
	}

	var cmd tea.Cmd
	m.picker.inputs[m.picker.focus], cmd = m.picker.inputs[m.picker.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdReadNote(note.ID)
	case key.Matches(keyMsg, keys.newNote):
		if m.busy {
			return m, nil
		}
		m.editor = m.newEditor(nil)
		m.currentScreen = screenEditor
		m.status = ""
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok || m.busy {
			return m, nil
		}
		m.askDelete(note.ID, note.Title)
	case key.Matches(keyMsg, keys.refresh):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.list.loading = true
		return m, m.cmdLoadList()
	case key.Matches(keyMsg, keys.esc):
		m.closeVault()
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.editor = m.editor.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			_, content := m.editor.values()
			return m, cmdCopyToClipboard(content)
		case key.Matches(keyMsg, keys.remove):
			if !m.editor.editing() {
				return m, nil
			}
			title, _ := m.editor.values()
			m.askDelete(m.editor.noteID, title)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.busy {
				return m, nil
			}
			title, content := m.editor.values()
			if strings.TrimSpace(title) == "" {
				m.showMessage(app.MsgTitleRequired)
				return m, nil
			}
			m.busy = true
			m.editor.submitting = true
			if m.editor.editing() {
				return m, m.cmdSaveNote(m.editor.noteID, title, content)
			}
			return m, m.cmdAddNote(title, content)
		}
	}

	var cmd tea.Cmd
	if m.editor.focus == editorTitle {
		m.editor.title, cmd = m.editor.title.Update(msg)
	} else {
		m.editor.content, cmd = m.editor.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) newEditor(note *models.Note) editorModel {
	e := newEditorModel(note)
	e.setSize(m.width, m.height)
	return e
}

func (m *appModel) askDelete(id int64, title string) {
	m.showConfirm = true
	m.confirm.message = title
	m.pendingDelete = id
}

// closeVault returns to the picker and forgets everything about the vault.
// Commands still running for it are ignored when they finish.
func (m *appModel) closeVault() {
	m.vault.CloseVault()
	m.generation++
	m.busy = false
	m.showConfirm = false
	m.pendingDelete = 0
	m.vaultPath = ""
	m.list = listModel{}
	m.editor = m.newEditor(nil)
	m.picker.reset()
	m.currentScreen = screenPicker
	m.status = app.MsgVaultClosed
}

func (m appModel) cmdCreateVault(path, keyHex string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	return func() tea.Msg {
		err := svc.CreateVault(ctx, path, keyHex)
		return vaultCreatedMsg{path: path, err: err}
	}
}

func (m appModel) cmdOpenVault(path, keyHex string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	return func() tea.Msg {
		notes, err := svc.OpenVault(ctx, path, keyHex)
		return vaultOpenedMsg{path: path, notes: notes, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	gen := m.generation
	return func() tea.Msg {
		notes, err := svc.ListNotes(ctx)
		return listLoadedMsg{gen: gen, notes: notes, err: err}
	}
}

func (m appModel) cmdReadNote(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	gen := m.generation
	return func() tea.Msg {
		note, err := svc.ReadNote(ctx, id)
		return noteLoadedMsg{gen: gen, note: note, err: err}
	}
}

func (m appModel) cmdAddNote(title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	gen := m.generation
	return func() tea.Msg {
		_, err := svc.AddNote(ctx, title, content)
		return noteSavedMsg{gen: gen, added: true, err: err}
	}
}

func (m appModel) cmdSaveNote(id int64, title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	gen := m.generation
	return func() tea.Msg {
		err := svc.SaveNote(ctx, id, title, content)
		return noteSavedMsg{gen: gen, err: err}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	gen := m.generation
	return func() tea.Msg {
		err := svc.DeleteNote(ctx, id)
		return noteDeletedMsg{gen: gen, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
