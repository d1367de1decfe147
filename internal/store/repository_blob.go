// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/models"
)

const blobsTable = "secure_blobs"

// blobInsertBatch bounds the number of rows per INSERT statement.
const blobInsertBatch = 100

const orphanBlobsCondition = `hash NOT IN (
	SELECT data_hash FROM secure_values WHERE data_hash IS NOT NULL
	UNION
	SELECT hash FROM secure_value_files)`

type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository constructs a [BlobRepository] backed by db.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

// an existing row keeps its ciphertext but gets a fresh created_at, so a
// concurrent DeleteOrphanBlobs treats it as young
const refreshBlobSuffix = "ON CONFLICT (hash) DO UPDATE SET created_at = excluded.created_at"

// SaveBlobs upserts blobs in batches. The ciphertext of a hash that is
// already present is kept: equal hashes mean equal padded plaintext, and any
// stored ciphertext for it decrypts to the same bytes.
func (r *blobRepository) SaveBlobs(ctx context.Context, blobs ...models.SecureData) (int64, error) {
	log := logger.FromContext(ctx)

	// one statement may not touch the same conflicting row twice
	blobs = uniqueBlobs(blobs)
	if len(blobs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	var inserted int64

	for start := 0; start < len(blobs); start += blobInsertBatch {
		end := min(start+blobInsertBatch, len(blobs))

		insert := r.builder.
			Insert(blobsTable).
			Columns("hash", "data", "secret", "created_at").
			Suffix(refreshBlobSuffix)
		for _, b := range blobs[start:end] {
			insert = insert.Values(b.Hash, b.Data, b.Secret, now)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var affected int64
		err = r.withRetry(ctx, func(ctx context.Context) error {
			res, err := r.DB.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}
			affected, err = res.RowsAffected()
			return err
		})
		if err != nil {
			log.Err(err).
				Str("func", "blobRepository.SaveBlobs").
				Int("batch_start", start).
				Int("batch_size", end-start).
				Msg("failed to insert blobs")
			return inserted, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		inserted += affected
	}

	log.Debug().
		Int("blobs", len(blobs)).
		Int64("written", inserted).
		Msg("blobs saved")

	return inserted, nil
}

func uniqueBlobs(blobs []models.SecureData) []models.SecureData {
	seen := make(map[string]struct{}, len(blobs))
	out := make([]models.SecureData, 0, len(blobs))
	for _, b := range blobs {
		key := string(b.Hash)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}

func (r *blobRepository) GetBlob(ctx context.Context, hash []byte) (models.SecureData, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("hash", "data", "secret", "created_at").
		From(blobsTable).
		Where("hash = ?", hash).
		ToSql()
	if err != nil {
		return models.SecureData{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob models.SecureData
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&blob.Hash,
			&blob.Data,
			&blob.Secret,
			&blob.CreatedAt,
		)
	})
	if err != nil {
		err = r.mapError(err)
		if errors.Is(err, ErrNotFound) {
			return models.SecureData{}, fmt.Errorf("blob %s: %w", hex.EncodeToString(hash), err)
		}
		log.Err(err).
			Str("func", "blobRepository.GetBlob").
			Str("hash", hex.EncodeToString(hash)).
			Msg("failed to load blob")
		return models.SecureData{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

func (r *blobRepository) DeleteOrphanBlobs(ctx context.Context, createdBefore time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(blobsTable).
		Where(orphanBlobsCondition).
		Where("created_at < ?", createdBefore.UTC()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.DeleteOrphanBlobs").
			Time("created_before", createdBefore).
			Msg("failed to delete orphan blobs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Int64("deleted", deleted).Msg("orphan blobs removed")

	return deleted, nil
}
