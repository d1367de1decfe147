// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-secure-id/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParseKDF(cfg.App.KDF); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if _, ok := crypto.ParseByteOrder(cfg.App.SecretIDByteOrder); !ok {
		return fmt.Errorf("%w: unknown secret id byte order %q", ErrInvalidAppConfigs, cfg.App.SecretIDByteOrder)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency %d", ErrInvalidWorkerConfigs, cfg.Workers.Concurrency)
	}

	return nil
}
