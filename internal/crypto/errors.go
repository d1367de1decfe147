package crypto

import "errors"

// Sentinel errors returned by the crypto package. Every failure is
// recoverable from the caller's point of view and is matched with errors.Is.
var (
	// ErrMalformedInput is returned when a fixed-size field (secret, hash,
	// salted password, key, IV) has the wrong length or a padded buffer
	// carries an impossible padding length.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidMasterSecret is returned when a master secret fails the
	// canary checksum or does not match the expected secret ID. After an
	// unwrap this almost always means a wrong password.
	ErrInvalidMasterSecret = errors.New("invalid master secret")

	// ErrIntegrityMismatch is returned when the SHA-256 of the decrypted
	// padded plaintext differs from the declared content hash. The
	// plaintext is discarded.
	ErrIntegrityMismatch = errors.New("content hash mismatch")

	// ErrCryptoPrimitive is returned when a hash, cipher, or random source
	// call fails.
	ErrCryptoPrimitive = errors.New("crypto primitive failure")

	// ErrUnknownKDF is returned by ParseKDF for an unsupported algorithm name.
	ErrUnknownKDF = errors.New("unknown password kdf")
)
