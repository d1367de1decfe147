// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-id/internal/config"
	"github.com/MKhiriev/go-secure-id/internal/crypto"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/internal/store"
	"github.com/MKhiriev/go-secure-id/internal/utils"
	"github.com/MKhiriev/go-secure-id/internal/validators"
	"github.com/MKhiriev/go-secure-id/internal/workers"
	"github.com/MKhiriev/go-secure-id/models"
)

// vaultService orchestrates the crypto core and the repositories. It holds
// no unlocked key material itself: every value operation receives the
// caller's [crypto.Session].
type vaultService struct {
	secrets  crypto.SecretKeeper
	blobs    crypto.BlobCipher
	keyChain crypto.KeyChain
	kdf      crypto.KDF

	secretRepository store.SecretRepository
	blobRepository   store.BlobRepository
	valueRepository  store.ValueRepository

	pool      workers.Runner
	validator validators.Validator
	ids       utils.IDGenerator

	// orphanGrace protects blobs of saves still in flight from collection
	orphanGrace time.Duration

	logger *logger.Logger
}

// OrphanBlobGracePeriod is how old an unreferenced blob must be before
// garbage collection removes it.
const OrphanBlobGracePeriod = 10 * time.Minute

// NewVaultService builds a [VaultService] from configuration. Extra crypto
// options (e.g. a deterministic random source in tests) are applied after
// the configured ones.
func NewVaultService(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, opts ...crypto.Option) (VaultService, error) {
	kdf, err := crypto.ParseKDF(cfg.App.KDF)
	if err != nil {
		return nil, err
	}

	order, ok := crypto.ParseByteOrder(cfg.App.SecretIDByteOrder)
	if !ok {
		return nil, fmt.Errorf("%w: unknown secret id byte order %q", ErrInvalidDataProvided, cfg.App.SecretIDByteOrder)
	}
	opts = append([]crypto.Option{crypto.WithSecretIDByteOrder(order)}, opts...)

	return &vaultService{
		secrets:          crypto.NewSecretCodec(opts...),
		blobs:            crypto.NewBlobCodec(opts...),
		keyChain:         crypto.NewPasswordKeyChain(),
		kdf:              kdf,
		secretRepository: storages.SecretRepository,
		blobRepository:   storages.BlobRepository,
		valueRepository:  storages.ValueRepository,
		pool:             workers.NewPool(cfg.Workers.Concurrency),
		validator:        validators.NewSecureValueValidator(),
		ids:              utils.NewUUIDGenerator(),
		orphanGrace:      OrphanBlobGracePeriod,
		logger:           logger,
	}, nil
}

func (v *vaultService) Setup(ctx context.Context, password string) (crypto.Session, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, validators.Password(password)); err != nil {
		return crypto.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := v.secretRepository.GetActiveSecret(ctx)
	switch {
	case err == nil:
		return crypto.Session{}, ErrVaultAlreadyInitialized
	case !errors.Is(err, store.ErrNotFound):
		return crypto.Session{}, fmt.Errorf("error loading secret record: %w", err)
	}

	salt, saltedPassword, err := v.derive(password, v.kdf)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Setup").Msg("failed to derive salted password")
		return crypto.Session{}, err
	}

	secret, err := v.secrets.Generate()
	if err != nil {
		log.Err(err).Str("func", "vaultService.Setup").Msg("failed to generate master secret")
		return crypto.Session{}, fmt.Errorf("error generating master secret: %w", err)
	}

	session, err := crypto.NewSession(v.secrets, secret, saltedPassword, 1)
	if err != nil {
		return crypto.Session{}, err
	}

	if err = v.persistSession(ctx, session, salt, v.kdf); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return crypto.Session{}, ErrVaultAlreadyInitialized
		}
		log.Err(err).Str("func", "vaultService.Setup").Msg("failed to store secret record")
		return crypto.Session{}, err
	}

	log.Info().
		Int64("secret_id", session.SecretID()).
		Str("kdf", string(v.kdf)).
		Msg("vault initialized")

	return session, nil
}

func (v *vaultService) Unlock(ctx context.Context, password string) (crypto.Session, error) {
	log := logger.FromContext(ctx)

	record, err := v.secretRepository.GetActiveSecret(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return crypto.Session{}, ErrVaultNotInitialized
		}
		return crypto.Session{}, fmt.Errorf("error loading secret record: %w", err)
	}

	kdf, err := crypto.ParseKDF(record.KDF)
	if err != nil {
		return crypto.Session{}, err
	}

	saltedPassword, err := v.keyChain.DeriveSaltedPassword(kdf, password, record.Salt)
	if err != nil {
		return crypto.Session{}, fmt.Errorf("error deriving salted password: %w", err)
	}

	session, err := crypto.OpenSession(v.secrets, record.WrappedSecret, saltedPassword, record.SecretID, record.Generation)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidMasterSecret) {
			log.Warn().
				Str("func", "vaultService.Unlock").
				Uint64("generation", record.Generation).
				Msg("unlock rejected")
			return crypto.Session{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		log.Err(err).Str("func", "vaultService.Unlock").Msg("failed to open session")
		return crypto.Session{}, err
	}

	log.Debug().Uint64("generation", session.Generation()).Msg("vault unlocked")

	return session, nil
}

func (v *vaultService) ChangePassword(ctx context.Context, session crypto.Session, newPassword string) (crypto.Session, error) {
	log := logger.FromContext(ctx)

	if session.IsZero() {
		return crypto.Session{}, ErrVaultLocked
	}
	if err := v.validator.Validate(ctx, validators.Password(newPassword)); err != nil {
		return crypto.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	active, err := v.secretRepository.GetActiveSecret(ctx)
	if err != nil {
		return crypto.Session{}, fmt.Errorf("error loading secret record: %w", err)
	}
	if active.Generation != session.Generation() {
		return crypto.Session{}, ErrStaleSession
	}

	salt, saltedPassword, err := v.derive(newPassword, v.kdf)
	if err != nil {
		return crypto.Session{}, err
	}

	next, _, err := session.Rewrap(v.secrets, saltedPassword)
	if err != nil {
		log.Err(err).Str("func", "vaultService.ChangePassword").Msg("failed to rewrap master secret")
		return crypto.Session{}, err
	}

	if err = v.persistSession(ctx, next, salt, v.kdf); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return crypto.Session{}, ErrStaleSession
		}
		log.Err(err).Str("func", "vaultService.ChangePassword").Msg("failed to store secret record")
		return crypto.Session{}, err
	}

	log.Info().Uint64("generation", next.Generation()).Msg("password changed")

	return next, nil
}

func (v *vaultService) derive(password string, kdf crypto.KDF) (salt, saltedPassword []byte, err error) {
	salt, err = v.keyChain.GenerateSalt()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating salt: %w", err)
	}

	saltedPassword, err = v.keyChain.DeriveSaltedPassword(kdf, password, salt)
	if err != nil {
		return nil, nil, fmt.Errorf("error deriving salted password: %w", err)
	}

	return salt, saltedPassword, nil
}

func (v *vaultService) persistSession(ctx context.Context, session crypto.Session, salt []byte, kdf crypto.KDF) error {
	wrapped, err := session.Wrapped(v.secrets)
	if err != nil {
		return fmt.Errorf("error wrapping master secret: %w", err)
	}

	now := time.Now().UTC()
	return v.secretRepository.SaveSecret(ctx, models.SecretRecord{
		Generation:    session.Generation(),
		WrappedSecret: wrapped,
		SecretID:      session.SecretID(),
		KDF:           string(kdf),
		Salt:          salt,
		CreatedAt:     &now,
	})
}

func (v *vaultService) SaveValue(ctx context.Context, session crypto.Session, req models.SaveValueRequest) (models.SecureValue, error) {
	log := logger.FromContext(ctx)

	if session.IsZero() {
		return models.SecureValue{}, ErrVaultLocked
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SecureValue{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	plaintexts := make([][]byte, 0, len(req.Files)+1)
	if len(req.Data) > 0 {
		data, err := json.Marshal(req.Data)
		if err != nil {
			return models.SecureValue{}, fmt.Errorf("error encoding data fields: %w", err)
		}
		plaintexts = append(plaintexts, data)
	}
	plaintexts = append(plaintexts, req.Files...)

	encrypted, err := workers.Map(ctx, v.pool, plaintexts, func(_ context.Context, p []byte) (crypto.EncryptedBlob, error) {
		return v.blobs.Encrypt(p, session)
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.SaveValue").
			Str("type", string(req.Type)).
			Msg("failed to encrypt secure value")
		return models.SecureValue{}, fmt.Errorf("error encrypting secure value: %w", err)
	}

	value := models.SecureValue{
		ID:         v.ids.Generate(),
		Type:       req.Type,
		Generation: session.Generation(),
	}
	blobs := make([]models.SecureData, 0, len(encrypted))
	for i, b := range encrypted {
		if i == 0 && len(req.Data) > 0 {
			value.DataHash = b.Hash
		} else {
			value.FileHashes = append(value.FileHashes, b.Hash)
		}
		blobs = append(blobs, toSecureData(b))
	}

	if _, err = v.blobRepository.SaveBlobs(ctx, blobs...); err != nil {
		return models.SecureValue{}, fmt.Errorf("error saving blobs: %w", err)
	}

	stored, err := v.valueRepository.SaveValue(ctx, value)
	if err != nil {
		return models.SecureValue{}, fmt.Errorf("error saving secure value: %w", err)
	}

	// the replaced value's blobs are unreferenced now and go once they age
	v.collectGarbage(ctx)

	log.Info().
		Str("type", string(stored.Type)).
		Str("id", stored.ID).
		Int("blobs", len(blobs)).
		Msg("secure value saved")

	return stored, nil
}

func (v *vaultService) GetValue(ctx context.Context, session crypto.Session, valueType models.SecureValueType) (models.DecryptedValue, error) {
	log := logger.FromContext(ctx)

	if session.IsZero() {
		return models.DecryptedValue{}, ErrVaultLocked
	}
	if err := v.validator.Validate(ctx, models.SaveValueRequest{Type: valueType}, validators.FieldType); err != nil {
		return models.DecryptedValue{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	value, err := v.valueRepository.GetValue(ctx, valueType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.DecryptedValue{}, fmt.Errorf("%w: %s", ErrValueNotFound, valueType)
		}
		return models.DecryptedValue{}, fmt.Errorf("error loading secure value: %w", err)
	}

	hashes := make([][]byte, 0, len(value.FileHashes)+1)
	if len(value.DataHash) > 0 {
		hashes = append(hashes, value.DataHash)
	}
	hashes = append(hashes, value.FileHashes...)

	plaintexts, err := workers.Map(ctx, v.pool, hashes, func(ctx context.Context, hash []byte) ([]byte, error) {
		return v.decryptBlob(ctx, session, hash)
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.GetValue").
			Str("type", string(valueType)).
			Msg("failed to decrypt secure value")
		return models.DecryptedValue{}, err
	}

	result := models.DecryptedValue{
		ID:   value.ID,
		Type: value.Type,
	}
	if len(value.DataHash) > 0 {
		if err = json.Unmarshal(plaintexts[0], &result.Data); err != nil {
			return models.DecryptedValue{}, fmt.Errorf("%w: data fields: %w", ErrCorruptedValue, err)
		}
		plaintexts = plaintexts[1:]
	}
	if len(plaintexts) > 0 {
		result.Files = plaintexts
	}

	return result, nil
}

func (v *vaultService) decryptBlob(ctx context.Context, session crypto.Session, hash []byte) ([]byte, error) {
	stored, err := v.blobRepository.GetBlob(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: missing blob %s", ErrCorruptedValue, utils.ShortHash(hash))
		}
		return nil, fmt.Errorf("error loading blob: %w", err)
	}

	plaintext, err := v.blobs.Decrypt(toEncryptedBlob(stored), session)
	if err != nil {
		if errors.Is(err, crypto.ErrIntegrityMismatch) || errors.Is(err, crypto.ErrMalformedInput) {
			return nil, fmt.Errorf("%w: blob %s: %w", ErrCorruptedValue, utils.ShortHash(hash), err)
		}
		return nil, err
	}

	return plaintext, nil
}

func (v *vaultService) ListValues(ctx context.Context) ([]models.SecureValue, error) {
	values, err := v.valueRepository.ListValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing secure values: %w", err)
	}
	return values, nil
}

func (v *vaultService) DeleteValue(ctx context.Context, valueType models.SecureValueType) error {
	if err := v.valueRepository.DeleteValue(ctx, valueType); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrValueNotFound, valueType)
		}
		return fmt.Errorf("error deleting secure value: %w", err)
	}

	v.collectGarbage(ctx)

	return nil
}

// collectGarbage removes unreferenced blobs older than the grace period.
// Failure leaves orphans behind for the next run and is only logged.
func (v *vaultService) collectGarbage(ctx context.Context) {
	n, err := v.blobRepository.DeleteOrphanBlobs(ctx, time.Now().UTC().Add(-v.orphanGrace))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "vaultService.collectGarbage").
			Msg("failed to delete orphan blobs")
		return
	}
	if n > 0 {
		logger.FromContext(ctx).Debug().Int64("deleted", n).Msg("orphan blobs deleted")
	}
}
