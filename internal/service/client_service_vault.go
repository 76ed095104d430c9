// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/vault"
	"github.com/MKhiriev/go-note-vault/models"
)

// SessionOpener binds a vault file to a key. It fails on a malformed key
// and does not touch the file.
type SessionOpener func(path, keyHex string) (VaultSession, error)

// NewSessionOpener returns a SessionOpener creating *vault.Session values
// that keep their snapshots in tempDir and log through logger.
func NewSessionOpener(tempDir string, logger *logger.Logger) SessionOpener {
	return func(path, keyHex string) (VaultSession, error) {
		s, err := vault.NewSession(path, keyHex,
			vault.WithTempDir(tempDir),
			vault.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

type clientVaultService struct {
	mu      sync.Mutex
	open    SessionOpener
	session VaultSession

	logger *logger.Logger
}

func NewClientVaultService(open SessionOpener, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{open: open, logger: logger}
}

func (v *clientVaultService) CreateVault(ctx context.Context, path, keyHex string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	s, err := v.open(path, keyHex)
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}
	defer s.Close()

	if err = s.Create(ctx); err != nil {
		v.logger.Err(err).Str("func", "clientVaultService.CreateVault").Msg("failed to create vault")
		return fmt.Errorf("create vault: %w", err)
	}

	v.logger.Info().Str("func", "clientVaultService.CreateVault").Msg("vault created")
	return nil
}

func (v *clientVaultService) OpenVault(ctx context.Context, path, keyHex string) ([]models.NoteHeader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	s, err := v.open(path, keyHex)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	notes, err := s.List(ctx)
	if err != nil {
		_ = s.Close()
		v.logger.Err(err).Str("func", "clientVaultService.OpenVault").Msg("failed to open vault")
		return nil, fmt.Errorf("open vault: %w", err)
	}

	v.mu.Lock()
	previous := v.session
	v.session = s
	v.mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}

	return notes, nil
}

func (v *clientVaultService) ListNotes(ctx context.Context) ([]models.NoteHeader, error) {
	s, err := v.current()
	if err != nil {
		return nil, err
	}

	notes, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (v *clientVaultService) ReadNote(ctx context.Context, id int64) (models.Note, error) {
	s, err := v.current()
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.Read(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("read note: %w", err)
	}
	return note, nil
}

func (v *clientVaultService) SaveNote(ctx context.Context, id int64, title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	s, err := v.current()
	if err != nil {
		return err
	}

	if err = s.Save(ctx, id, title, content); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (v *clientVaultService) AddNote(ctx context.Context, title, content string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrEmptyTitle
	}

	s, err := v.current()
	if err != nil {
		return 0, err
	}

	id, err := s.Add(ctx, title, content)
	if err != nil {
		return 0, fmt.Errorf("add note: %w", err)
	}
	return id, nil
}

func (v *clientVaultService) DeleteNote(ctx context.Context, id int64) error {
	s, err := v.current()
	if err != nil {
		return err
	}

	if err = s.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (v *clientVaultService) CloseVault() {
	v.mu.Lock()
	s := v.session
	v.session = nil
	v.mu.Unlock()

	if s != nil {
		_ = s.Close()
	}
}

func (v *clientVaultService) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session != nil
}

func (v *clientVaultService) current() (VaultSession, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.session == nil {
		return nil, ErrVaultNotOpened
	}
	return v.session, nil
}
