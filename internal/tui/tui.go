package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	vaultPath string
}

// New builds the terminal UI. vaultPath pre-fills the path field of the
// vault picker and may be empty.
func New(services *service.ClientServices, vaultPath string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.VaultService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger, vaultPath: vaultPath}, nil
}

// Run blocks until the user quits. The open vault, if any, is closed before
// Run returns.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.VaultService.CloseVault()

	model := newAppModel(ctx, t.services, t.vaultPath)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return runErr
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
