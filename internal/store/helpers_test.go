package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB, driver string) *DB {
	return newDB(db, driver, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteStore opens a migrated in-memory SQLite database.
func newSQLiteStore(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("sqlite integration test")
	}

	db, err := NewConnect(testContext(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + t.Name() + "?mode=memory&cache=shared",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func configDB(driver, dsn string) config.DB {
	return config.DB{Driver: driver, DSN: dsn}
}
