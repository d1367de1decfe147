// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/models"
)

const (
	valuesTable     = "secure_values"
	valueFilesTable = "secure_value_files"
)

var valueColumns = []string{"id", "type", "data_hash", "generation", "created_at", "updated_at"}

const upsertValueSuffix = `ON CONFLICT (type) DO UPDATE SET
	data_hash = excluded.data_hash,
	generation = excluded.generation,
	updated_at = excluded.updated_at
	RETURNING id`

// valueRepository keeps secure_values and their ordered file hashes in
// secure_value_files consistent inside one transaction per write.
type valueRepository struct {
	*DB
	logger *logger.Logger
}

// NewValueRepository constructs a [ValueRepository] backed by db.
func NewValueRepository(db *DB, logger *logger.Logger) ValueRepository {
	return &valueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *valueRepository) SaveValue(ctx context.Context, value models.SecureValue) (models.SecureValue, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	createdAt := now
	if value.CreatedAt != nil {
		createdAt = *value.CreatedAt
	}

	upsert, upsertArgs, err := r.builder.
		Insert(valuesTable).
		Columns(valueColumns...).
		Values(value.ID, string(value.Type), nullableBytes(value.DataHash), value.Generation, createdAt, now).
		Suffix(upsertValueSuffix).
		ToSql()
	if err != nil {
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.SaveValue").
			Str("type", string(value.Type)).
			Msg("failed to begin transaction")
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "valueRepository.SaveValue")

	stored := value
	stored.UpdatedAt = &now
	if err = tx.QueryRowContext(ctx, upsert, upsertArgs...).Scan(&stored.ID); err != nil {
		log.Err(err).
			Str("func", "valueRepository.SaveValue").
			Str("type", string(value.Type)).
			Msg("failed to upsert secure value")
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.mapError(err))
	}

	// on replace the row keeps its original created_at
	created, createdArgs, err := r.builder.
		Select("created_at").
		From(valuesTable).
		Where("type = ?", string(value.Type)).
		ToSql()
	if err != nil {
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = tx.QueryRowContext(ctx, created, createdArgs...).Scan(&stored.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "valueRepository.SaveValue").
			Str("type", string(value.Type)).
			Msg("failed to read back secure value")
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = r.replaceFiles(ctx, tx, value.Type, value.FileHashes); err != nil {
		log.Err(err).
			Str("func", "valueRepository.SaveValue").
			Str("type", string(value.Type)).
			Int("files", len(value.FileHashes)).
			Msg("failed to store file references")
		return models.SecureValue{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "valueRepository.SaveValue").
			Str("type", string(value.Type)).
			Msg("failed to commit transaction")
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("type", string(value.Type)).
		Str("id", stored.ID).
		Int("files", len(value.FileHashes)).
		Msg("secure value saved")

	return stored, nil
}

func (r *valueRepository) replaceFiles(ctx context.Context, tx *sql.Tx, valueType models.SecureValueType, hashes [][]byte) error {
	del, delArgs, err := r.builder.
		Delete(valueFilesTable).
		Where("value_type = ?", string(valueType)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, del, delArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(hashes) == 0 {
		return nil
	}

	insert := r.builder.
		Insert(valueFilesTable).
		Columns("value_type", "position", "hash")
	for i, h := range hashes {
		insert = insert.Values(string(valueType), i, h)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *valueRepository) GetValue(ctx context.Context, valueType models.SecureValueType) (models.SecureValue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(valueColumns...).
		From(valuesTable).
		Where("type = ?", string(valueType)).
		ToSql()
	if err != nil {
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	value, err := scanValue(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.mapError(err)
		if errors.Is(err, ErrNotFound) {
			return models.SecureValue{}, fmt.Errorf("%s: %w", valueType, err)
		}
		log.Err(err).
			Str("func", "valueRepository.GetValue").
			Str("type", string(valueType)).
			Msg("failed to load secure value")
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	files, err := r.loadFiles(ctx, &valueType)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.GetValue").
			Str("type", string(valueType)).
			Msg("failed to load file references")
		return models.SecureValue{}, err
	}
	value.FileHashes = files[valueType]

	return value, nil
}

func (r *valueRepository) ListValues(ctx context.Context) ([]models.SecureValue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(valueColumns...).
		From(valuesTable).
		OrderBy("type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.ListValues").
			Msg("failed to execute query for listing secure values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]models.SecureValue, 0, len(models.AllSecureValueTypes))
	for rows.Next() {
		value, scanErr := scanValue(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "valueRepository.ListValues").
				Msg("failed to scan secure value row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values = append(values, value)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "valueRepository.ListValues").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(values) == 0 {
		return values, nil
	}

	files, err := r.loadFiles(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.ListValues").
			Msg("failed to load file references")
		return nil, err
	}
	for i := range values {
		values[i].FileHashes = files[values[i].Type]
	}

	return values, nil
}

// loadFiles returns ordered file hashes grouped by value type, for one type
// or for all of them when valueType is nil.
func (r *valueRepository) loadFiles(ctx context.Context, valueType *models.SecureValueType) (map[models.SecureValueType][][]byte, error) {
	sel := r.builder.
		Select("value_type", "hash").
		From(valueFilesTable).
		OrderBy("value_type", "position")
	if valueType != nil {
		sel = sel.Where("value_type = ?", string(*valueType))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make(map[models.SecureValueType][][]byte)
	for rows.Next() {
		var (
			t    string
			hash []byte
		)
		if err = rows.Scan(&t, &hash); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files[models.SecureValueType(t)] = append(files[models.SecureValueType(t)], hash)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

func (r *valueRepository) DeleteValue(ctx context.Context, valueType models.SecureValueType) error {
	log := logger.FromContext(ctx)

	delFiles, delFilesArgs, err := r.builder.
		Delete(valueFilesTable).
		Where("value_type = ?", string(valueType)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	delValue, delValueArgs, err := r.builder.
		Delete(valuesTable).
		Where("type = ?", string(valueType)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.DeleteValue").
			Str("type", string(valueType)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "valueRepository.DeleteValue")

	if _, err = tx.ExecContext(ctx, delFiles, delFilesArgs...); err != nil {
		log.Err(err).
			Str("func", "valueRepository.DeleteValue").
			Str("type", string(valueType)).
			Msg("failed to delete file references")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, delValue, delValueArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "valueRepository.DeleteValue").
			Str("type", string(valueType)).
			Msg("failed to delete secure value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", valueType, ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "valueRepository.DeleteValue").
			Str("type", string(valueType)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanValue(row rowScanner) (models.SecureValue, error) {
	var (
		value     models.SecureValue
		valueType string
	)

	err := row.Scan(
		&value.ID,
		&valueType,
		&value.DataHash,
		&value.Generation,
		&value.CreatedAt,
		&value.UpdatedAt,
	)
	if err != nil {
		return models.SecureValue{}, err
	}
	value.Type = models.SecureValueType(valueType)

	return value, nil
}

// nullableBytes stores an empty hash as SQL NULL.
func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
