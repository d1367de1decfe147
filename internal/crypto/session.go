// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// Session is an unlocked master secret together with the salted password it
// is wrapped under. It is an immutable value: accessors return copies and a
// password change or secret rotation produces a new Session with a higher
// generation instead of modifying the existing one.
type Session struct {
	masterSecret   []byte
	saltedPassword []byte
	secretID       int64
	generation     uint64
}

// NewSession validates secret and saltedPassword and returns a Session
// bound to generation.
func NewSession(codec SecretKeeper, secret, saltedPassword []byte, generation uint64) (Session, error) {
	if len(saltedPassword) != SaltedPasswordSize {
		return Session{}, fmt.Errorf("%w: salted password length %d, want %d", ErrMalformedInput, len(saltedPassword), SaltedPasswordSize)
	}
	if !codec.Validate(secret) {
		return Session{}, ErrInvalidMasterSecret
	}

	return Session{
		masterSecret:   clone(secret),
		saltedPassword: clone(saltedPassword),
		secretID:       codec.SecretID(secret),
		generation:     generation,
	}, nil
}

// OpenSession unwraps a stored master secret and checks it against
// expectedID. A wrong password surfaces as [ErrInvalidMasterSecret].
func OpenSession(codec SecretKeeper, wrapped, saltedPassword []byte, expectedID int64, generation uint64) (Session, error) {
	secret, err := codec.Unwrap(wrapped, saltedPassword)
	if err != nil {
		return Session{}, err
	}
	if !codec.ValidateWithID(secret, expectedID) {
		return Session{}, ErrInvalidMasterSecret
	}
	return NewSession(codec, secret, saltedPassword, generation)
}

// MasterSecret returns a copy of the unwrapped master secret.
func (s Session) MasterSecret() []byte { return clone(s.masterSecret) }

// SaltedPassword returns a copy of the salted password.
func (s Session) SaltedPassword() []byte { return clone(s.saltedPassword) }

// SecretID returns the ID of the master secret.
func (s Session) SecretID() int64 { return s.secretID }

// Generation returns the version counter of this session.
func (s Session) Generation() uint64 { return s.generation }

// IsZero reports whether s was never initialised.
func (s Session) IsZero() bool { return s.masterSecret == nil }

// Wrapped returns the master secret wrapped under the session's salted
// password, ready to be persisted.
func (s Session) Wrapped(codec SecretKeeper) ([]byte, error) {
	return codec.Wrap(s.masterSecret, s.saltedPassword)
}

// Rewrap returns a Session holding the same master secret under
// newSaltedPassword, with the generation incremented, and the new wrapped
// form. Existing ciphertexts stay decryptable.
func (s Session) Rewrap(codec SecretKeeper, newSaltedPassword []byte) (Session, []byte, error) {
	next, err := NewSession(codec, s.masterSecret, newSaltedPassword, s.generation+1)
	if err != nil {
		return Session{}, nil, err
	}
	wrapped, err := next.Wrapped(codec)
	if err != nil {
		return Session{}, nil, err
	}
	return next, wrapped, nil
}

// Rotate returns a Session with a freshly generated master secret wrapped
// under newSaltedPassword, with the generation incremented. Values
// encrypted under the old secret must be re-encrypted by the caller.
func (s Session) Rotate(codec SecretKeeper, newSaltedPassword []byte) (Session, []byte, error) {
	secret, err := codec.Generate()
	if err != nil {
		return Session{}, nil, err
	}
	next, err := NewSession(codec, secret, newSaltedPassword, s.generation+1)
	if err != nil {
		return Session{}, nil, err
	}
	wrapped, err := next.Wrapped(codec)
	if err != nil {
		return Session{}, nil, err
	}
	return next, wrapped, nil
}
