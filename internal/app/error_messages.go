// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the secureid
// command and the mapping from service errors to them.
//
// Keeping them in one place ensures consistent wording across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-secure-id/internal/service"
	"github.com/MKhiriev/go-secure-id/internal/validators"
)

const (
	// MsgInvalidDataProvided is printed when a value fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgPasswordTooShort is printed when a new vault password is rejected.
	MsgPasswordTooShort = "password is too short"

	// MsgWrongPassword is printed when the master secret cannot be
	// unwrapped with the supplied password.
	MsgWrongPassword = "wrong password"

	// MsgVaultNotInitialized is printed when a command needs a vault that
	// has not been created with "init" yet.
	MsgVaultNotInitialized = "vault is not initialized, run init first"

	// MsgVaultAlreadyInitialized is printed when "init" runs against an
	// existing vault.
	MsgVaultAlreadyInitialized = "vault is already initialized"

	// MsgPasswordChangedConcurrently is printed when another process changed
	// the password between unlock and re-wrap.
	MsgPasswordChangedConcurrently = "password was changed concurrently, try again"

	// MsgValueNotFound is printed when no value of the requested type is
	// stored.
	MsgValueNotFound = "value not found"

	// MsgValueCorrupted is printed when stored ciphertext fails the
	// integrity check.
	MsgValueCorrupted = "stored value is corrupted"

	// MsgInternalError is printed for everything else.
	MsgInternalError = "internal error"
)

// Message returns the user-facing message for err. Unknown errors map to
// [MsgInternalError].
func Message(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidPassword):
		return MsgPasswordTooShort
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MsgInvalidDataProvided
	case errors.Is(err, service.ErrWrongPassword):
		return MsgWrongPassword
	case errors.Is(err, service.ErrVaultNotInitialized):
		return MsgVaultNotInitialized
	case errors.Is(err, service.ErrVaultAlreadyInitialized):
		return MsgVaultAlreadyInitialized
	case errors.Is(err, service.ErrStaleSession):
		return MsgPasswordChangedConcurrently
	case errors.Is(err, service.ErrValueNotFound):
		return MsgValueNotFound
	case errors.Is(err, service.ErrCorruptedValue):
		return MsgValueCorrupted
	default:
		return MsgInternalError
	}
}
