package service

import (
	"context"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
