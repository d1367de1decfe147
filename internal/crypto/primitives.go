// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"
)

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [HashSize]byte {
	return sha256.Sum256(data)
}

// SHA512 returns the SHA-512 digest of the concatenation of parts.
func SHA512(parts ...[]byte) [sha512.Size]byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}

	var out [sha512.Size]byte
	h.Sum(out[:0])
	return out
}

// AESCBCInPlace encrypts or decrypts buf in place with AES-256-CBC and no
// cipher-level padding. len(buf) must be a multiple of [BlockSize]; callers
// are responsible for alignment, so a violation is reported immediately
// as [ErrCryptoPrimitive].
func AESCBCInPlace(buf, key, iv []byte, decrypt bool) error {
	if len(key) != aesKeySize {
		return fmt.Errorf("%w: key length %d, want %d", ErrCryptoPrimitive, len(key), aesKeySize)
	}
	if len(iv) != aesIVSize {
		return fmt.Errorf("%w: iv length %d, want %d", ErrCryptoPrimitive, len(iv), aesIVSize)
	}
	if len(buf)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: buffer length %d is not a multiple of %d", ErrCryptoPrimitive, len(buf), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: create cipher: %w", ErrCryptoPrimitive, err)
	}

	if len(buf) == 0 {
		return nil
	}

	if decrypt {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, buf)
	} else {
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	}

	return nil
}

// RandomBytes reads n bytes from r, which must be a cryptographically secure
// source (crypto/rand.Reader outside of tests).
func RandomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: read random: %w", ErrCryptoPrimitive, err)
	}
	return b, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
