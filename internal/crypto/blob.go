// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// EncryptedBlob is the output of [BlobCodec.Encrypt] and the input of
// [BlobCodec.Decrypt]. It is immutable once produced.
type EncryptedBlob struct {
	// Data is the padded plaintext encrypted under the item key.
	Data []byte

	// Hash is SHA-256 of the padded plaintext. It addresses the blob in
	// storage and is an input to both key derivations.
	Hash []byte

	// Secret is the per-item secret wrapped under a key derived from the
	// master secret and Hash.
	Secret []byte
}

// BlobCodec encrypts field groups and files under a [Session].
type BlobCodec struct {
	secrets *SecretCodec
	rand    io.Reader
}

// NewBlobCodec constructs a [BlobCodec]. Options are shared with the
// embedded [SecretCodec] that generates item secrets and validates master
// secrets.
func NewBlobCodec(opts ...Option) *BlobCodec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BlobCodec{
		secrets: &SecretCodec{rand: o.rand, idOrder: o.idOrder},
		rand:    o.rand,
	}
}

// Encrypt pads plaintext, encrypts it under a fresh item secret and wraps
// that secret under the session's master secret. On error nothing is
// returned.
func (c *BlobCodec) Encrypt(plaintext []byte, session Session) (EncryptedBlob, error) {
	if err := c.checkSession(session); err != nil {
		return EncryptedBlob{}, err
	}

	padded, err := Pad(c.rand, plaintext)
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("pad plaintext: %w", err)
	}
	hash := SHA256(padded)

	itemSecret, err := c.secrets.Generate()
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("generate item secret: %w", err)
	}

	key, iv, err := DeriveBlobKey(itemSecret, hash[:])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("derive content key: %w", err)
	}
	if err = AESCBCInPlace(padded, key, iv, false); err != nil {
		return EncryptedBlob{}, fmt.Errorf("encrypt content: %w", err)
	}

	wrapKey, wrapIV, err := DeriveBlobKey(session.masterSecret, hash[:])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("derive secret key: %w", err)
	}
	wrapped := itemSecret
	if err = AESCBCInPlace(wrapped, wrapKey, wrapIV, false); err != nil {
		return EncryptedBlob{}, fmt.Errorf("wrap item secret: %w", err)
	}

	return EncryptedBlob{
		Data:   padded,
		Hash:   clone(hash[:]),
		Secret: wrapped,
	}, nil
}

// Decrypt recovers the plaintext of blob. The inputs are not modified.
//
// Any tampering with Data, Hash or Secret, or a blob that belongs to a
// different master secret, yields [ErrIntegrityMismatch]; no plaintext is
// returned in that case.
func (c *BlobCodec) Decrypt(blob EncryptedBlob, session Session) ([]byte, error) {
	if len(blob.Secret) != SecretSize {
		return nil, fmt.Errorf("%w: item secret length %d, want %d", ErrMalformedInput, len(blob.Secret), SecretSize)
	}
	if len(blob.Hash) != HashSize {
		return nil, fmt.Errorf("%w: hash length %d, want %d", ErrMalformedInput, len(blob.Hash), HashSize)
	}
	if len(blob.Data) < MinPadding || len(blob.Data)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrMalformedInput, len(blob.Data))
	}
	if err := c.checkSession(session); err != nil {
		return nil, err
	}

	wrapKey, wrapIV, err := DeriveBlobKey(session.masterSecret, blob.Hash)
	if err != nil {
		return nil, fmt.Errorf("derive secret key: %w", err)
	}
	itemSecret := clone(blob.Secret)
	if err = AESCBCInPlace(itemSecret, wrapKey, wrapIV, true); err != nil {
		return nil, fmt.Errorf("unwrap item secret: %w", err)
	}
	if isZero(itemSecret) {
		return nil, fmt.Errorf("%w: implausible item secret", ErrIntegrityMismatch)
	}

	key, iv, err := DeriveBlobKey(itemSecret, blob.Hash)
	if err != nil {
		return nil, fmt.Errorf("derive content key: %w", err)
	}
	padded := clone(blob.Data)
	if err = AESCBCInPlace(padded, key, iv, true); err != nil {
		return nil, fmt.Errorf("decrypt content: %w", err)
	}

	sum := SHA256(padded)
	if subtle.ConstantTimeCompare(sum[:], blob.Hash) != 1 {
		return nil, ErrIntegrityMismatch
	}

	return Unpad(padded)
}

func (c *BlobCodec) checkSession(session Session) error {
	if len(session.saltedPassword) != SaltedPasswordSize {
		return fmt.Errorf("%w: salted password length %d, want %d", ErrMalformedInput, len(session.saltedPassword), SaltedPasswordSize)
	}
	if !c.secrets.Validate(session.masterSecret) {
		return ErrInvalidMasterSecret
	}
	return nil
}
