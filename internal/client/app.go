package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UI
	workers  BackgroundWorker
	logger   *logger.Logger

	readKey func() (string, error)
	out     io.Writer
}

// NewApp wires the client runtime. ui may be nil only in -init mode and
// workers may be nil when there is nothing to run at start-up.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, ui UI, workers BackgroundWorker, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if services == nil || services.VaultService == nil {
		return nil, ErrNilServices
	}
	if ui == nil && !cfg.Init {
		return nil, ErrNilUI
	}

	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   log,
		readKey:  func() (string, error) { return promptKey(os.Stdin, os.Stderr) },
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.workers != nil {
		if err := a.workers.Run(ctx); err != nil {
			a.logger.Error().Err(err).Msg("start-up workers failed")
		}
	}

	if a.cfg.Init {
		return a.initVault(ctx)
	}

	a.logger.Info().Msg("starting tui")
	return a.ui.Run(ctx)
}

// initVault creates an empty vault at the configured path. The key comes
// from the config or, when absent, from a no-echo prompt.
func (a *App) initVault(ctx context.Context) error {
	path := a.cfg.Vault.Path
	if path == "" {
		return ErrVaultPathNeeded
	}

	keyHex := a.cfg.Vault.Key
	if keyHex == "" {
		var err error
		keyHex, err = a.readKey()
		if err != nil {
			return fmt.Errorf("read vault key: %w", err)
		}
	}

	if err := a.services.VaultService.CreateVault(ctx, path, keyHex); err != nil {
		a.logger.Err(err).Str("path", path).Msg("vault init failed")
		return fmt.Errorf("init vault: %w", err)
	}

	a.logger.Info().Str("path", path).Msg("vault initialised")
	fmt.Fprintf(a.out, "Vault created: %s\n", path)
	return nil
}
