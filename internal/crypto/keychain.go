// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDF names the algorithm that stretches a password into a salted password.
type KDF string

const (
	// KDFSHA512 is the legacy SHA-512(salt ‖ password ‖ salt) derivation.
	KDFSHA512 KDF = "sha512"

	// KDFPBKDF2 is PBKDF2-HMAC-SHA512 with 100 000 iterations.
	KDFPBKDF2 KDF = "pbkdf2-sha512"

	// KDFArgon2id is Argon2id with the key chain's tuning parameters.
	KDFArgon2id KDF = "argon2id"
)

// DefaultKDF is used when no algorithm is configured.
const DefaultKDF = KDFPBKDF2

const pbkdf2Iterations = 100000

// ParseKDF validates an algorithm name. An empty string selects [DefaultKDF].
func ParseKDF(s string) (KDF, error) {
	switch KDF(s) {
	case "":
		return DefaultKDF, nil
	case KDFSHA512, KDFPBKDF2, KDFArgon2id:
		return KDF(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKDF, s)
	}
}

// PasswordKeyChain implements [KeyChain].
type PasswordKeyChain struct {
	rand io.Reader

	// Argon2id tuning parameters. Kept on the struct so they can be lowered
	// for constrained devices or tests.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// KeyChainOption configures a [PasswordKeyChain].
type KeyChainOption func(*PasswordKeyChain)

// WithKeyChainRandom replaces the salt random source.
func WithKeyChainRandom(r io.Reader) KeyChainOption {
	return func(k *PasswordKeyChain) {
		if r != nil {
			k.rand = r
		}
	}
}

// WithArgon2Params overrides the Argon2id cost parameters.
func WithArgon2Params(time, memoryKiB uint32, threads uint8) KeyChainOption {
	return func(k *PasswordKeyChain) {
		k.argonTime = time
		k.argonMemory = memoryKiB
		k.argonThreads = threads
	}
}

// NewPasswordKeyChain constructs a [PasswordKeyChain] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewPasswordKeyChain(opts ...KeyChainOption) *PasswordKeyChain {
	k := &PasswordKeyChain{
		rand:         rand.Reader,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateSalt implements [KeyChain]. The salt is not secret and is stored
// next to the wrapped master secret.
func (k *PasswordKeyChain) GenerateSalt() ([]byte, error) {
	return RandomBytes(k.rand, SaltSize)
}

// DeriveSaltedPassword implements [KeyChain]. It always returns
// [SaltedPasswordSize] bytes; an empty salt is rejected.
func (k *PasswordKeyChain) DeriveSaltedPassword(algo KDF, password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrMalformedInput)
	}

	switch algo {
	case KDFSHA512:
		sum := SHA512(salt, []byte(password), salt)
		return clone(sum[:]), nil
	case KDFPBKDF2:
		return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, SaltedPasswordSize, sha512.New), nil
	case KDFArgon2id:
		return argon2.IDKey([]byte(password), salt, k.argonTime, k.argonMemory, k.argonThreads, SaltedPasswordSize), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, algo)
	}
}
