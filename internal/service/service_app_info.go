package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/internal/store"
	"github.com/MKhiriev/go-secure-id/models"
)

// DevVersion is reported when no application version is configured.
const DevVersion = "dev"

type appInfoService struct {
	appVersion string

	secretRepository store.SecretRepository
	valueRepository  store.ValueRepository

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storages *store.Storages, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = DevVersion
	}

	return &appInfoService{
		appVersion:       version,
		secretRepository: storages.SecretRepository,
		valueRepository:  storages.ValueRepository,
		logger:           logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Status(ctx context.Context) (models.VaultStatus, error) {
	status := models.VaultStatus{AppVersion: s.appVersion}

	record, err := s.secretRepository.GetActiveSecret(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return status, nil
	}
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("error loading secret record: %w", err)
	}

	values, err := s.valueRepository.ListValues(ctx)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("error listing secure values: %w", err)
	}

	status.Initialized = true
	status.Generation = record.Generation
	status.SecretID = record.SecretID
	status.KDF = record.KDF
	status.Values = len(values)

	return status, nil
}
