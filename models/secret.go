// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecretRecord is the at-rest form of the master secret. It is safe to
// store anywhere: without the password the wrapped secret is noise.
type SecretRecord struct {
	// Generation increments on every password change or secret rotation.
	// The record with the highest generation is the active one.
	Generation uint64 `json:"generation"`

	// WrappedSecret is the master secret encrypted under the salted password.
	WrappedSecret []byte `json:"wrapped_secret"`

	// SecretID identifies the unwrapped secret; used to detect a wrong
	// password after unwrapping.
	SecretID int64 `json:"secret_id"`

	// KDF names the password stretching algorithm.
	KDF string `json:"kdf"`

	// Salt is the password salt. Not secret.
	Salt []byte `json:"salt"`

	// CreatedAt is the timestamp when this generation was written.
	CreatedAt *time.Time `json:"created_at"`
}
