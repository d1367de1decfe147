package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/models"
)

func TestSecretRepository_SaveSecret(t *testing.T) {
	now := time.Now().UTC()
	record := models.SecretRecord{
		Generation:    2,
		WrappedSecret: []byte("wrapped-secret-0123456789abcdef"),
		SecretID:      -42,
		KDF:           "pbkdf2-sha512",
		Salt:          []byte("salt"),
		CreatedAt:     &now,
	}

	tests := []struct {
		name    string
		driver  string
		query   string
		execErr error
		wantErr error
	}{
		{
			name:   "success: sqlite placeholders",
			driver: config.DriverSQLite,
			query:  "INSERT INTO secure_secrets (generation,wrapped_secret,secret_id,kdf,salt,created_at) VALUES (?,?,?,?,?,?)",
		},
		{
			name:   "success: postgres placeholders",
			driver: config.DriverPostgres,
			query:  "INSERT INTO secure_secrets (generation,wrapped_secret,secret_id,kdf,salt,created_at) VALUES ($1,$2,$3,$4,$5,$6)",
		},
		{
			name:    "error: generation already written",
			driver:  config.DriverPostgres,
			query:   "INSERT INTO secure_secrets",
			execErr: &pgconn.PgError{Code: "23505"},
			wantErr: ErrAlreadyExists,
		},
		{
			name:    "error: generic failure",
			driver:  config.DriverSQLite,
			query:   "INSERT INTO secure_secrets",
			execErr: errors.New("disk full"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewSecretRepository(newDBFromSQL(db, tt.driver), logger.Nop())

			exp := mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(int64(2), record.WrappedSecret, int64(-42), "pbkdf2-sha512", record.Salt, sqlmock.AnyArg())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.SaveSecret(testContext(), record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSecretRepository_SaveSecret_RetriesBusy(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_secrets")).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_secrets")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveSecret(testContext(), models.SecretRecord{Generation: 1})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSecretRepository_GetActiveSecret(t *testing.T) {
	const query = "SELECT generation, wrapped_secret, secret_id, kdf, salt, created_at FROM secure_secrets ORDER BY generation DESC LIMIT 1"
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecretRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(sqlmock.NewRows(secretColumns).
				AddRow(int64(3), []byte("w"), int64(7), "argon2id", []byte("s"), now))

		got, err := repo.GetActiveSecret(testContext())
		require.NoError(t, err)
		assert.Equal(t, uint64(3), got.Generation)
		assert.Equal(t, []byte("w"), got.WrappedSecret)
		assert.Equal(t, int64(7), got.SecretID)
		assert.Equal(t, "argon2id", got.KDF)
		assert.Equal(t, []byte("s"), got.Salt)
		require.NotNil(t, got.CreatedAt)
		assert.True(t, now.Equal(*got.CreatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecretRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(sqlmock.NewRows(secretColumns))

		_, err := repo.GetActiveSecret(testContext())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSecretRepository(newDBFromSQL(db, config.DriverSQLite), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("boom"))

		_, err := repo.GetActiveSecret(testContext())
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
