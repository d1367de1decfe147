package service

import (
	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/internal/store"
)

type Services struct {
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	vault, err := NewVaultService(storages, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VaultService:   vault,
		AppInfoService: NewAppInfoService(cfg.App, storages, logger),
	}, nil
}
