package store

import "github.com/MKhiriev/go-secure-id/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	SecretRepository SecretRepository
	BlobRepository   BlobRepository
	ValueRepository  ValueRepository
}

// NewStorages builds all repositories over one connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		SecretRepository: NewSecretRepository(db, logger),
		BlobRepository:   NewBlobRepository(db, logger),
		ValueRepository:  NewValueRepository(db, logger),
	}
}
