// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// SecretKeeper owns the lifecycle of 32-byte secrets: generation, the canary
// checksum, secret IDs, and wrapping under a salted password.
// [*SecretCodec] is the implementation.
type SecretKeeper interface {
	// Generate returns a fresh secret that passes Validate.
	Generate() ([]byte, error)

	// Validate reports whether secret has the right length and checksum.
	Validate(secret []byte) bool

	// ValidateWithID is Validate plus a secret ID comparison.
	ValidateWithID(secret []byte, expectedID int64) bool

	// SecretID derives the 64-bit ID of secret.
	SecretID(secret []byte) int64

	// Wrap encrypts secret under saltedPassword.
	Wrap(secret, saltedPassword []byte) ([]byte, error)

	// Unwrap decrypts wrapped under saltedPassword without validating it.
	Unwrap(wrapped, saltedPassword []byte) ([]byte, error)
}

// BlobCipher encrypts and decrypts individual secure blobs (a JSON field
// group or a file) under an unlocked [Session]. [*BlobCodec] is the
// implementation.
type BlobCipher interface {
	// Encrypt pads and encrypts plaintext, returning ciphertext, content
	// hash and wrapped item secret.
	Encrypt(plaintext []byte, session Session) (EncryptedBlob, error)

	// Decrypt reverses Encrypt and verifies the content hash.
	Decrypt(blob EncryptedBlob, session Session) ([]byte, error)
}

// KeyChain derives the salted password that wraps the master secret.
// [*PasswordKeyChain] is the implementation.
type KeyChain interface {
	// GenerateSalt returns a fresh random password salt.
	GenerateSalt() ([]byte, error)

	// DeriveSaltedPassword stretches password with salt into 64 bytes of
	// key material using the given algorithm.
	DeriveSaltedPassword(algo KDF, password string, salt []byte) ([]byte, error)
}

var (
	_ SecretKeeper = (*SecretCodec)(nil)
	_ BlobCipher   = (*BlobCodec)(nil)
	_ KeyChain     = (*PasswordKeyChain)(nil)
)
