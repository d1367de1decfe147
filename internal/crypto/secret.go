// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SecretCodec generates, validates, and wraps 32-byte secrets.
//
// A valid secret satisfies sum(bytes) mod 255 == 239. The checksum is not a
// MAC: a random 32-byte value passes it with probability 1/255, which is the
// expected false-accept rate when detecting a wrongly unwrapped secret.
type SecretCodec struct {
	rand    io.Reader
	idOrder binary.ByteOrder
}

// NewSecretCodec constructs a [SecretCodec]. By default it reads randomness
// from crypto/rand and derives secret IDs big-endian.
func NewSecretCodec(opts ...Option) *SecretCodec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SecretCodec{rand: o.rand, idOrder: o.idOrder}
}

// Validate reports whether secret is 32 bytes long and satisfies the
// canary checksum.
func (c *SecretCodec) Validate(secret []byte) bool {
	return len(secret) == SecretSize && checksum(secret) == secretChecksum
}

// ValidateWithID is [SecretCodec.Validate] plus a check that the secret's
// ID equals expectedID.
func (c *SecretCodec) ValidateWithID(secret []byte, expectedID int64) bool {
	return c.Validate(secret) && c.SecretID(secret) == expectedID
}

// SecretID returns the 64-bit identifier of secret: the first 8 bytes of
// SHA-256(secret) read in the codec's byte order.
func (c *SecretCodec) SecretID(secret []byte) int64 {
	h := SHA256(secret)
	return int64(c.idOrder.Uint64(h[:8]))
}

// Generate returns a fresh random secret satisfying the canary checksum.
// At most one randomly chosen byte is adjusted, never in a loop: any
// residue mod 255 is reachable from any byte value in a single step.
func (c *SecretCodec) Generate() ([]byte, error) {
	secret, err := RandomBytes(c.rand, SecretSize)
	if err != nil {
		return nil, err
	}

	sum := checksum(secret)
	if sum == secretChecksum {
		return secret, nil
	}

	idx, err := randomInt(c.rand, SecretSize)
	if err != nil {
		return nil, err
	}

	diff := (secretChecksum - sum + secretChecksumModulus) % secretChecksumModulus
	secret[idx] = byte((int(secret[idx]) + diff) % secretChecksumModulus)

	return secret, nil
}

// Wrap encrypts a copy of secret under saltedPassword. The input is not
// modified.
func (c *SecretCodec) Wrap(secret, saltedPassword []byte) ([]byte, error) {
	if len(secret) != SecretSize {
		return nil, fmt.Errorf("%w: secret length %d, want %d", ErrMalformedInput, len(secret), SecretSize)
	}
	return cryptWithSaltedPassword(secret, saltedPassword, false)
}

// Unwrap decrypts a copy of wrapped under saltedPassword. It performs no
// integrity check; callers must run [SecretCodec.Validate] or
// [SecretCodec.ValidateWithID] on the result.
func (c *SecretCodec) Unwrap(wrapped, saltedPassword []byte) ([]byte, error) {
	if len(wrapped) != SecretSize {
		return nil, fmt.Errorf("%w: wrapped secret length %d, want %d", ErrMalformedInput, len(wrapped), SecretSize)
	}
	return cryptWithSaltedPassword(wrapped, saltedPassword, true)
}

func cryptWithSaltedPassword(in, saltedPassword []byte, decrypt bool) ([]byte, error) {
	if len(saltedPassword) != SaltedPasswordSize {
		return nil, fmt.Errorf("%w: salted password length %d, want %d", ErrMalformedInput, len(saltedPassword), SaltedPasswordSize)
	}

	out := clone(in)
	key := saltedPassword[:aesKeySize]
	iv := saltedPassword[aesKeySize : aesKeySize+aesIVSize]
	if err := AESCBCInPlace(out, key, iv, decrypt); err != nil {
		return nil, err
	}
	return out, nil
}

func checksum(b []byte) int {
	sum := 0
	for _, v := range b {
		sum += int(v)
	}
	return sum % secretChecksumModulus
}

// randomInt returns a uniform integer in [0, n) for 0 < n <= 256, drawing
// single bytes from r and rejecting the biased tail.
func randomInt(r io.Reader, n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, fmt.Errorf("%w: random int: %w", ErrCryptoPrimitive, err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}
