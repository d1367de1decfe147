package service

import (
	"context"

	"github.com/MKhiriev/go-secure-id/internal/crypto"
	"github.com/MKhiriev/go-secure-id/models"
)

// VaultService is the entry point for every vault operation. Operations on
// secure values require an unlocked [crypto.Session] obtained from Setup,
// Unlock or ChangePassword.
type VaultService interface {
	// Setup initialises an empty vault: it generates the master secret,
	// wraps it under password and stores generation 1.
	Setup(ctx context.Context, password string) (crypto.Session, error)

	// Unlock unwraps the active master secret with password.
	Unlock(ctx context.Context, password string) (crypto.Session, error)

	// ChangePassword re-wraps the session's master secret under
	// newPassword as a new generation. Stored values stay decryptable.
	ChangePassword(ctx context.Context, session crypto.Session, newPassword string) (crypto.Session, error)

	// SaveValue encrypts and stores req, replacing any value of the same type.
	SaveValue(ctx context.Context, session crypto.Session, req models.SaveValueRequest) (models.SecureValue, error)

	// GetValue loads and decrypts the value of valueType.
	GetValue(ctx context.Context, session crypto.Session, valueType models.SecureValueType) (models.DecryptedValue, error)

	// ListValues returns the stored values without decrypting them.
	ListValues(ctx context.Context) ([]models.SecureValue, error)

	// DeleteValue removes the value of valueType and any blobs left
	// unreferenced.
	DeleteValue(ctx context.Context, valueType models.SecureValueType) error
}

// AppInfoService reports application and vault metadata that needs no
// password.
type AppInfoService interface {
	// GetAppVersion returns the configured application version.
	GetAppVersion(ctx context.Context) string

	// Status summarises the vault. An uninitialised vault is not an error.
	Status(ctx context.Context) (models.VaultStatus, error)
}
