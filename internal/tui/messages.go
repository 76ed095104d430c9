package tui

import (
	"github.com/MKhiriev/go-note-vault/models"
)

type vaultCreatedMsg struct {
	path string
	err  error
}

type vaultOpenedMsg struct {
	path  string
	notes []models.NoteHeader
	err   error
}

// The messages below carry the vault generation they were started in.
// Results of an older generation belong to a closed vault and are dropped.

type listLoadedMsg struct {
	gen   int
	notes []models.NoteHeader
	err   error
}

type noteLoadedMsg struct {
	gen  int
	note models.Note
	err  error
}

type noteSavedMsg struct {
	gen   int
	added bool
	err   error
}

type noteDeletedMsg struct {
	gen int
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
