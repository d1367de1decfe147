// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side secure-value encryption scheme.
//
// Nothing in this package performs I/O or keeps shared mutable state: every
// operation is a synchronous transformation over buffers owned by the caller
// or allocated per call, so independent blobs may be processed in parallel.
//
// Scheme overview:
//
//	SaltedPassword = KDF(password, salt)                    (64 bytes)
//	MasterSecret   = Generate()                             (32 bytes, canary sum%255 == 239)
//	Wrapped        = AES-256-CBC(MasterSecret, SP[0:32], SP[32:48])
//
//	Padded         = Pad(plaintext)                         (random prefix, len%16 == 0)
//	Hash           = SHA-256(Padded)
//	ItemSecret     = Generate()
//	Data           = AES-256-CBC(Padded, KDF512(ItemSecret, Hash))
//	Secret         = AES-256-CBC(ItemSecret, KDF512(MasterSecret, Hash))
//
// where KDF512(a, b) splits SHA-512(a ‖ b) into a 32-byte key and a 16-byte IV.
// Decryption reverses the chain and rejects the result unless SHA-256 of the
// recovered padded plaintext equals the declared Hash.
package crypto
