// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecureData is the storage and wire representation of one encrypted blob.
// All three byte fields are opaque to the backend; Hash is used for
// deduplication and addressing. Byte slices marshal as base64 in JSON.
type SecureData struct {
	// Hash is SHA-256 of the padded plaintext (32 bytes).
	Hash []byte `json:"data_hash"`

	// Data is the AES-256-CBC ciphertext of the padded plaintext.
	Data []byte `json:"data"`

	// Secret is the wrapped per-item secret (32 bytes).
	Secret []byte `json:"secret"`

	// CreatedAt is set by the store on first insert.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table associated with
// SecureData.
func (d *SecureData) TableName() string {
	return "secure_blobs"
}
