package store

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/models"
)

func testBlob(i int) models.SecureData {
	return models.SecureData{
		Hash:   []byte(fmt.Sprintf("hash-%02d", i)),
		Data:   []byte(fmt.Sprintf("data-%02d", i)),
		Secret: []byte(fmt.Sprintf("secret-%02d", i)),
	}
}

func TestBlobRepository_SaveBlobs(t *testing.T) {
	t.Run("empty input does nothing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		n, err := repo.SaveBlobs(testContext())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single batch with conflict clause", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverPostgres), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(
			"INSERT INTO secure_blobs (hash,data,secret,created_at) VALUES ($1,$2,$3,$4),($5,$6,$7,$8) ON CONFLICT (hash) DO UPDATE SET created_at = excluded.created_at",
		)).
			WithArgs(
				testBlob(0).Hash, testBlob(0).Data, testBlob(0).Secret, sqlmock.AnyArg(),
				testBlob(1).Hash, testBlob(1).Data, testBlob(1).Secret, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.SaveBlobs(testContext(), testBlob(0), testBlob(1))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate hashes are written once", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverPostgres), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(
			"INSERT INTO secure_blobs (hash,data,secret,created_at) VALUES ($1,$2,$3,$4),($5,$6,$7,$8) ON CONFLICT",
		)).
			WithArgs(
				testBlob(0).Hash, testBlob(0).Data, testBlob(0).Secret, sqlmock.AnyArg(),
				testBlob(1).Hash, testBlob(1).Data, testBlob(1).Secret, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := repo.SaveBlobs(testContext(), testBlob(0), testBlob(1), testBlob(0))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("splits into batches", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		blobs := make([]models.SecureData, blobInsertBatch+5)
		for i := range blobs {
			blobs[i] = testBlob(i)
		}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_blobs")).
			WillReturnResult(sqlmock.NewResult(0, blobInsertBatch))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_blobs")).
			WillReturnResult(sqlmock.NewResult(0, 5))

		n, err := repo.SaveBlobs(testContext(), blobs...)
		require.NoError(t, err)
		assert.Equal(t, int64(blobInsertBatch+5), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_blobs")).
			WillReturnError(errors.New("boom"))

		_, err := repo.SaveBlobs(testContext(), testBlob(0))
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestBlobRepository_GetBlob(t *testing.T) {
	const query = "SELECT hash, data, secret, created_at FROM secure_blobs WHERE hash = ?"
	columns := []string{"hash", "data", "secret", "created_at"}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())
		b := testBlob(3)

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(b.Hash).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(b.Hash, b.Data, b.Secret, nil))

		got, err := repo.GetBlob(testContext(), b.Hash)
		require.NoError(t, err)
		assert.Equal(t, b.Hash, got.Hash)
		assert.Equal(t, b.Data, got.Data)
		assert.Equal(t, b.Secret, got.Secret)
		assert.Nil(t, got.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetBlob(testContext(), []byte{0xde, 0xad})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "dead")
	})
}

func TestBlobRepository_DeleteOrphanBlobs(t *testing.T) {
	t.Run("only blobs older than the bound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverPostgres), logger.Nop())

		bound := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectExec(`DELETE FROM secure_blobs WHERE hash NOT IN \((?s:.*)\) AND created_at < \$1`).
			WithArgs(bound).
			WillReturnResult(sqlmock.NewResult(0, 4))

		n, err := repo.DeleteOrphanBlobs(testContext(), bound.In(time.FixedZone("MSK", 3*60*60)))
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBlobRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM secure_blobs")).
			WillReturnError(errors.New("boom"))

		_, err := repo.DeleteOrphanBlobs(testContext(), time.Now())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
