package service

import (
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

type ClientServices struct {
	VaultService   ClientVaultService
	AppInfoService AppInfoService
}

func NewClientServices(cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		VaultService:   NewClientVaultService(NewSessionOpener(cfg.Storage.TempDir, logger), logger),
		AppInfoService: appInfo,
	}, nil
}
