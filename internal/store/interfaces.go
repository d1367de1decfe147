package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-id/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretRepository persists generations of the wrapped master secret.
// Records are append-only; the highest generation is the active one.
type SecretRepository interface {
	// SaveSecret inserts a new generation. Returns [ErrAlreadyExists] if
	// that generation was written concurrently.
	SaveSecret(ctx context.Context, record models.SecretRecord) error

	// GetActiveSecret returns the record with the highest generation, or
	// [ErrNotFound] for an uninitialised vault.
	GetActiveSecret(ctx context.Context) (models.SecretRecord, error)
}

// BlobRepository is a content-addressed store of encrypted blobs.
type BlobRepository interface {
	// SaveBlobs inserts blobs. A hash that is already stored keeps its
	// ciphertext and has its created_at moved to now. It returns the number
	// of rows inserted or refreshed.
	SaveBlobs(ctx context.Context, blobs ...models.SecureData) (int64, error)

	// GetBlob returns the blob with the given content hash, or [ErrNotFound].
	GetBlob(ctx context.Context, hash []byte) (models.SecureData, error)

	// DeleteOrphanBlobs removes blobs created before createdBefore that no
	// secure value references and returns how many were removed. Younger
	// orphans may belong to a save whose value row is not committed yet.
	DeleteOrphanBlobs(ctx context.Context, createdBefore time.Time) (int64, error)
}

// ValueRepository stores at most one [models.SecureValue] per type.
type ValueRepository interface {
	// SaveValue inserts or replaces the value of value.Type and returns the
	// stored row; on replace the original ID and CreatedAt are kept.
	SaveValue(ctx context.Context, value models.SecureValue) (models.SecureValue, error)

	// GetValue returns the value of the given type, or [ErrNotFound].
	GetValue(ctx context.Context, valueType models.SecureValueType) (models.SecureValue, error)

	// ListValues returns all stored values ordered by type.
	ListValues(ctx context.Context) ([]models.SecureValue, error)

	// DeleteValue removes the value of the given type, or returns [ErrNotFound].
	DeleteValue(ctx context.Context, valueType models.SecureValueType) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique or primary key
	// constraint violation.
	IsUniqueViolation(err error) bool
}
