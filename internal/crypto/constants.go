// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/sha256"
)

const (
	// SecretSize is the size of a master secret and of a per-item secret.
	SecretSize = 32

	// HashSize is the size of a content hash (SHA-256 of the padded plaintext).
	HashSize = sha256.Size

	// SaltedPasswordSize is the size of the password-derived key material.
	// Bytes [0:32] are the AES key, [32:48] the IV, [48:64] are unused.
	SaltedPasswordSize = 64

	// BlockSize is the AES block size every encrypted buffer is aligned to.
	BlockSize = aes.BlockSize

	// SaltSize is the size of a freshly generated password salt.
	SaltSize = 32

	aesKeySize = 32
	aesIVSize  = aes.BlockSize

	secretChecksum        = 239
	secretChecksumModulus = 255

	// MinPadding and MaxPadding bound the random prefix added by Pad.
	// The initial draw is in [MinPadding, MinPadding+paddingDrawRange) and at
	// most BlockSize-1 alignment increments follow, so the length always
	// fits in the single leading byte.
	MinPadding       = 32
	MaxPadding       = MinPadding + paddingDrawRange - 1 + BlockSize - 1
	paddingDrawRange = 256 - MinPadding - BlockSize
)
