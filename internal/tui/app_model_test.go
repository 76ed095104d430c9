package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/mock"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/vault"
	"github.com/MKhiriev/go-note-vault/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func newTestModel(t *testing.T, vaultPath string) (appModel, *mock.MockClientVaultService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientVaultService(ctrl)
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().BuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")).AnyTimes()

	m := newAppModel(context.Background(), &service.ClientServices{
		VaultService:   svc,
		AppInfoService: info,
	}, vaultPath)
	return m, svc
}

func send(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(appModel)
	require.True(t, ok)
	return next, cmd
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

var testNotes = []models.NoteHeader{
	{ID: 1, Title: "Groceries"},
	{ID: 2, Title: "Ideas"},
}

// openedModel returns a model on the list screen of an opened vault.
func openedModel(t *testing.T) (appModel, *mock.MockClientVaultService) {
	t.Helper()
	m, svc := newTestModel(t, "notes.vault")
	m.picker.inputs[pickerKey].SetValue("aa")

	svc.EXPECT().OpenVault(gomock.Any(), "notes.vault", "aa").Return(testNotes, nil)

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)
	require.Equal(t, screenList, m.currentScreen)
	return m, svc
}

// ─────────────────────────────────────────────
// picker
// ─────────────────────────────────────────────

func TestPicker_PrefilledPathFocusesKey(t *testing.T) {
	m, _ := newTestModel(t, "notes.vault")

	assert.Equal(t, "notes.vault", m.picker.path())
	assert.Equal(t, pickerKey, m.picker.focus)
}

func TestPicker_OpenVault_Success(t *testing.T) {
	m, _ := openedModel(t)

	assert.Equal(t, app.MsgVaultOpened, m.status)
	assert.Equal(t, "notes.vault", m.vaultPath)
	assert.Equal(t, testNotes, m.list.notes)
	assert.Empty(t, m.picker.key(), "key must not stay in the input")
	assert.Contains(t, m.View(), "Groceries")
	assert.Contains(t, m.View(), "Ideas")
}

func TestPicker_OpenVault_WrongKey(t *testing.T) {
	m, svc := newTestModel(t, "notes.vault")
	m.picker.inputs[pickerKey].SetValue("bb")

	svc.EXPECT().OpenVault(gomock.Any(), "notes.vault", "bb").
		Return(nil, &vault.Error{Kind: vault.KindDecryption})

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	assert.True(t, m.busy)
	m, _ = run(t, m, cmd)

	assert.False(t, m.busy)
	assert.Equal(t, screenPicker, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgWrongKeyOrCorrupted, m.errorOverlay.message)
	assert.Empty(t, m.picker.key())

	// dismiss
	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.False(t, m.showError)
}

func TestPicker_Validation(t *testing.T) {
	m, _ := newTestModel(t, "")

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPathRequired, m.errorOverlay.message)

	m, _ = send(t, m, keyType(tea.KeyEnter)) // close overlay
	m.picker.inputs[pickerPath].SetValue("notes.vault")

	m, cmd = send(t, m, keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgKeyRequired, m.errorOverlay.message)
}

func TestPicker_CreateVault(t *testing.T) {
	m, svc := newTestModel(t, "new.vault")
	m.picker.inputs[pickerKey].SetValue("cc")

	svc.EXPECT().CreateVault(gomock.Any(), "new.vault", "cc").Return(nil)

	m, cmd := send(t, m, keyType(tea.KeyCtrlN))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenPicker, m.currentScreen)
	assert.Equal(t, app.MsgVaultCreated, m.status)
	assert.False(t, m.showError)
}

func TestPicker_CreateVault_Error(t *testing.T) {
	m, svc := newTestModel(t, "/nope/new.vault")
	m.picker.inputs[pickerKey].SetValue("cc")

	svc.EXPECT().CreateVault(gomock.Any(), "/nope/new.vault", "cc").
		Return(&vault.Error{Kind: vault.KindIO})

	m, cmd := send(t, m, keyType(tea.KeyCtrlN))
	m, _ = run(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgVaultFileError, m.errorOverlay.message)
}

func TestPicker_TabSwitchesFocus(t *testing.T) {
	m, _ := newTestModel(t, "")
	require.Equal(t, pickerPath, m.picker.focus)

	m, _ = send(t, m, keyType(tea.KeyTab))
	assert.Equal(t, pickerKey, m.picker.focus)

	m, _ = send(t, m, keyType(tea.KeyShiftTab))
	assert.Equal(t, pickerPath, m.picker.focus)
}

func TestPicker_TypingGoesToFocusedInput(t *testing.T) {
	m, _ := newTestModel(t, "")

	for _, r := range "a.vault" {
		m, _ = send(t, m, keyRune(r))
	}
	assert.Equal(t, "a.vault", m.picker.path())
}

func TestPicker_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t, "")

	m, _ = send(t, m, keyType(tea.KeyCtrlB))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestList_Navigation(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyType(tea.KeyDown))
	assert.Equal(t, 1, m.list.idx)
	m, _ = send(t, m, keyType(tea.KeyDown))
	assert.Equal(t, 1, m.list.idx, "cursor stays on the last note")
	m, _ = send(t, m, keyRune('k'))
	assert.Equal(t, 0, m.list.idx)
}

func TestList_OpenNote(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ReadNote(gomock.Any(), int64(1)).
		Return(models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs"}, nil)

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	require.Equal(t, screenEditor, m.currentScreen)
	title, content := m.editor.values()
	assert.Equal(t, "Groceries", title)
	assert.Equal(t, "Milk, eggs", content)
	assert.True(t, m.editor.editing())
}

func TestList_OpenNote_NotFound(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ReadNote(gomock.Any(), int64(1)).
		Return(models.Note{}, &vault.Error{Kind: vault.KindNotFound, NoteID: 1})

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, app.MsgNoteNotFound, m.errorOverlay.message)
}

func TestList_Refresh(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ListNotes(gomock.Any()).Return([]models.NoteHeader{{ID: 2, Title: "Ideas"}}, nil)

	m, cmd := send(t, m, keyRune('r'))
	assert.True(t, m.list.loading)
	m, _ = run(t, m, cmd)

	assert.False(t, m.list.loading)
	assert.Equal(t, []models.NoteHeader{{ID: 2, Title: "Ideas"}}, m.list.notes)
}

func TestList_DeleteConfirmed(t *testing.T) {
	m, svc := openedModel(t)

	m, cmd := send(t, m, keyRune('d'))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Delete \"Groceries\"?")

	gomock.InOrder(
		svc.EXPECT().DeleteNote(gomock.Any(), int64(1)).Return(nil),
		svc.EXPECT().ListNotes(gomock.Any()).Return([]models.NoteHeader{{ID: 2, Title: "Ideas"}}, nil),
	)

	m, cmd = send(t, m, keyRune('y'))
	m, cmd = run(t, m, cmd)
	assert.Equal(t, app.MsgNoteHidden, m.status)
	m, _ = run(t, m, cmd)

	assert.Equal(t, []models.NoteHeader{{ID: 2, Title: "Ideas"}}, m.list.notes)
	assert.Zero(t, m.pendingDelete)
}

func TestList_DeleteCancelled(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyRune('d'))
	m, cmd := send(t, m, keyRune('n'))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Zero(t, m.pendingDelete)
	assert.Equal(t, screenList, m.currentScreen)
}

func TestList_BackClosesVault(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().CloseVault()

	m, _ = send(t, m, keyType(tea.KeyEsc))

	assert.Equal(t, screenPicker, m.currentScreen)
	assert.Empty(t, m.vaultPath)
	assert.Empty(t, m.list.notes)
	assert.Empty(t, m.picker.path())
	assert.Equal(t, app.MsgVaultClosed, m.status)
}

func TestList_Quit(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().CloseVault()

	_, cmd := send(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestForceQuit_AnyScreen(t *testing.T) {
	m, svc := newTestModel(t, "")

	svc.EXPECT().CloseVault()

	_, cmd := send(t, m, keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ─────────────────────────────────────────────
// editor
// ─────────────────────────────────────────────

func TestEditor_AddNote(t *testing.T) {
	m, svc := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	require.Equal(t, screenEditor, m.currentScreen)
	assert.False(t, m.editor.editing())

	m.editor.title.SetValue("Todo")
	m.editor.content.SetValue("write tests")

	gomock.InOrder(
		svc.EXPECT().AddNote(gomock.Any(), "Todo", "write tests").Return(int64(3), nil),
		svc.EXPECT().ListNotes(gomock.Any()).Return(append(testNotes, models.NoteHeader{ID: 3, Title: "Todo"}), nil),
	)

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	assert.True(t, m.editor.submitting)
	m, cmd = run(t, m, cmd)

	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, app.MsgNoteAdded, m.status)

	m, _ = run(t, m, cmd)
	assert.Len(t, m.list.notes, 3)
}

func TestEditor_SaveNote(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ReadNote(gomock.Any(), int64(1)).
		Return(models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs"}, nil)
	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	m.editor.content.SetValue("Milk, eggs, bread")

	svc.EXPECT().SaveNote(gomock.Any(), int64(1), "Groceries", "Milk, eggs, bread").Return(nil)
	svc.EXPECT().ListNotes(gomock.Any()).Return(testNotes, nil)

	m, cmd = send(t, m, keyType(tea.KeyCtrlS))
	m, cmd = run(t, m, cmd)
	assert.Equal(t, app.MsgNoteUpdated, m.status)
	_, _ = run(t, m, cmd)
}

func TestEditor_SaveError_StaysInEditor(t *testing.T) {
	m, svc := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	m.editor.title.SetValue("Todo")

	svc.EXPECT().AddNote(gomock.Any(), "Todo", "").Return(int64(0), &vault.Error{Kind: vault.KindIO})

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenEditor, m.currentScreen)
	assert.False(t, m.editor.submitting)
	assert.Equal(t, app.MsgVaultFileError, m.errorOverlay.message)
}

func TestEditor_EmptyTitle(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	m.editor.content.SetValue("body without title")

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgTitleRequired, m.errorOverlay.message)
}

func TestEditor_TabSwitchesFocus(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	require.Equal(t, editorTitle, m.editor.focus)

	m, _ = send(t, m, keyType(tea.KeyTab))
	assert.Equal(t, editorContent, m.editor.focus)

	m, _ = send(t, m, keyRune('x'))
	_, content := m.editor.values()
	assert.Equal(t, "x", content)
}

func TestEditor_CopyContent(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	m, _ := openedModel(t)
	m, _ = send(t, m, keyRune('n'))
	m.editor.content.SetValue("secret content")

	m, cmd := send(t, m, keyType(tea.KeyCtrlY))
	m, _ = run(t, m, cmd)

	assert.Equal(t, "secret content", copied)
	assert.Equal(t, app.MsgContentCopied, m.status)

	m, _ = send(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestEditor_CopyContent_ClipboardUnavailable(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard utilities available") }
	t.Cleanup(func() { clipboardWrite = orig })

	m, _ := openedModel(t)
	m, _ = send(t, m, keyRune('n'))

	m, cmd := send(t, m, keyType(tea.KeyCtrlY))
	m, _ = run(t, m, cmd)

	assert.Equal(t, app.MsgClipboardFailed, m.status)
}

func TestEditor_DeleteFromEditor(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ReadNote(gomock.Any(), int64(2)).Return(models.Note{ID: 2, Title: "Ideas"}, nil)
	m, _ = send(t, m, keyType(tea.KeyDown))
	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	m, _ = send(t, m, keyType(tea.KeyCtrlD))
	require.True(t, m.showConfirm)
	assert.Equal(t, int64(2), m.pendingDelete)
}

func TestEditor_DeleteIgnoredForNewNote(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	m, _ = send(t, m, keyType(tea.KeyCtrlD))
	assert.False(t, m.showConfirm)
}

func TestEditor_EscBackToList(t *testing.T) {
	m, _ := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenList, m.currentScreen)
}

func TestWindowSize_BeforeEditorOpened(t *testing.T) {
	m, _ := newTestModel(t, "")

	assert.NotPanics(t, func() {
		m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	})
	assert.Equal(t, 120, m.width)
}

// ─────────────────────────────────────────────
// results arriving after the vault was closed
// ─────────────────────────────────────────────

func TestList_ReadFinishingAfterCloseIsDropped(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ReadNote(gomock.Any(), int64(1)).
		Return(models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs"}, nil)
	svc.EXPECT().CloseVault()

	m, readCmd := send(t, m, keyType(tea.KeyEnter))
	require.NotNil(t, readCmd)
	m, _ = send(t, m, keyType(tea.KeyEsc))
	require.Equal(t, screenPicker, m.currentScreen)

	m, cmd := run(t, m, readCmd)

	assert.Nil(t, cmd)
	assert.Equal(t, screenPicker, m.currentScreen)
	assert.False(t, m.busy)
	title, content := m.editor.values()
	assert.Empty(t, title)
	assert.Empty(t, content)
	assert.NotContains(t, m.View(), "Milk, eggs")
}

func TestEditor_SaveFinishingAfterCloseIsDropped(t *testing.T) {
	m, svc := openedModel(t)

	m, _ = send(t, m, keyRune('n'))
	m.editor.title.SetValue("Todo")

	svc.EXPECT().AddNote(gomock.Any(), "Todo", "").Return(int64(3), nil)
	svc.EXPECT().CloseVault()

	m, saveCmd := send(t, m, keyType(tea.KeyCtrlS))
	require.NotNil(t, saveCmd)
	m, _ = send(t, m, keyType(tea.KeyEsc)) // editor -> list
	m, _ = send(t, m, keyType(tea.KeyEsc)) // list -> close vault
	require.Equal(t, screenPicker, m.currentScreen)

	m, cmd := run(t, m, saveCmd)

	assert.Nil(t, cmd, "no list reload for a closed vault")
	assert.Equal(t, screenPicker, m.currentScreen)
	assert.Equal(t, app.MsgVaultClosed, m.status)
}

func TestList_RefreshAndDeleteFinishingAfterCloseAreDropped(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ListNotes(gomock.Any()).Return(testNotes, nil)
	svc.EXPECT().DeleteNote(gomock.Any(), int64(1)).Return(nil)
	svc.EXPECT().CloseVault()

	m, _ = send(t, m, keyRune('d'))
	m, deleteCmd := send(t, m, keyRune('y'))
	require.NotNil(t, deleteCmd)
	m, _ = send(t, m, keyType(tea.KeyEsc))

	// refresh scheduled before the close, delivered after it
	stale := m
	stale.generation--
	refreshCmd := stale.cmdLoadList()

	m, cmd := run(t, m, deleteCmd)
	assert.Nil(t, cmd)
	m, _ = run(t, m, refreshCmd)

	assert.Equal(t, screenPicker, m.currentScreen)
	assert.Empty(t, m.list.notes)
	assert.NotEqual(t, app.MsgNoteHidden, m.status)
}

func TestList_ReopenedVaultAcceptsNewResults(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().CloseVault()
	m, _ = send(t, m, keyType(tea.KeyEsc))

	m.picker.inputs[pickerPath].SetValue("notes.vault")
	m.picker.inputs[pickerKey].SetValue("aa")
	svc.EXPECT().OpenVault(gomock.Any(), "notes.vault", "aa").Return(testNotes, nil)
	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)
	require.Equal(t, screenList, m.currentScreen)

	svc.EXPECT().ReadNote(gomock.Any(), int64(1)).
		Return(models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs"}, nil)
	m, cmd = send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenEditor, m.currentScreen)
}

func TestList_NewAndDeleteIgnoredWhileBusy(t *testing.T) {
	m, svc := openedModel(t)

	svc.EXPECT().ListNotes(gomock.Any()).Return(testNotes, nil)

	m, refreshCmd := send(t, m, keyRune('r'))
	require.True(t, m.busy)

	m, _ = send(t, m, keyRune('n'))
	assert.Equal(t, screenList, m.currentScreen)

	m, _ = send(t, m, keyRune('d'))
	assert.False(t, m.showConfirm)

	m, _ = run(t, m, refreshCmd)
	assert.False(t, m.busy)
}
