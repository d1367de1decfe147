// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/models"
)

const secretsTable = "secure_secrets"

var secretColumns = []string{"generation", "wrapped_secret", "secret_id", "kdf", "salt", "created_at"}

type secretRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretRepository constructs a [SecretRepository] backed by db.
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	return &secretRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *secretRepository) SaveSecret(ctx context.Context, record models.SecretRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(secretsTable).
		Columns(secretColumns...).
		Values(record.Generation, record.WrappedSecret, record.SecretID, record.KDF, record.Salt, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.SaveSecret").
			Uint64("generation", record.Generation).
			Msg("failed to insert secret record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.mapError(err))
	}

	log.Debug().
		Uint64("generation", record.Generation).
		Int64("secret_id", record.SecretID).
		Msg("secret record saved")

	return nil
}

func (r *secretRepository) GetActiveSecret(ctx context.Context) (models.SecretRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(secretColumns...).
		From(secretsTable).
		OrderBy("generation DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.SecretRecord
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&record.Generation,
			&record.WrappedSecret,
			&record.SecretID,
			&record.KDF,
			&record.Salt,
			&record.CreatedAt,
		)
	})
	if err != nil {
		err = r.mapError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "secretRepository.GetActiveSecret").
				Msg("failed to load active secret record")
			return models.SecretRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return models.SecretRecord{}, err
	}

	return record, nil
}
