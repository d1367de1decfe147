// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	codec := NewSecretCodec()
	secret, err := codec.Generate()
	require.NoError(t, err)
	sp := make([]byte, SaltedPasswordSize)

	s, err := NewSession(codec, secret, sp, 3)
	require.NoError(t, err)
	assert.False(t, s.IsZero())
	assert.Equal(t, uint64(3), s.Generation())
	assert.Equal(t, codec.SecretID(secret), s.SecretID())

	_, err = NewSession(codec, make([]byte, SecretSize), sp, 1)
	assert.ErrorIs(t, err, ErrInvalidMasterSecret)

	_, err = NewSession(codec, secret, sp[:32], 1)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestSession_AccessorsReturnCopies(t *testing.T) {
	s := newTestSession(t, 1)

	ms := s.MasterSecret()
	ms[0] ^= 0xFF
	sp := s.SaltedPassword()
	sp[0] ^= 0xFF

	assert.NotEqual(t, ms, s.MasterSecret())
	assert.NotEqual(t, sp, s.SaltedPassword())
	assert.True(t, Session{}.IsZero())
}

func TestOpenSession(t *testing.T) {
	codec := NewSecretCodec()
	s := newTestSession(t, 2)

	wrapped, err := s.Wrapped(codec)
	require.NoError(t, err)

	opened, err := OpenSession(codec, wrapped, s.SaltedPassword(), s.SecretID(), s.Generation())
	require.NoError(t, err)
	assert.Equal(t, s.MasterSecret(), opened.MasterSecret())

	wrong := s.SaltedPassword()
	wrong[0] ^= 0x01
	_, err = OpenSession(codec, wrapped, wrong, s.SecretID(), s.Generation())
	assert.ErrorIs(t, err, ErrInvalidMasterSecret)

	_, err = OpenSession(codec, wrapped, s.SaltedPassword(), s.SecretID()+1, s.Generation())
	assert.ErrorIs(t, err, ErrInvalidMasterSecret)

	_, err = OpenSession(codec, wrapped[:16], s.SaltedPassword(), s.SecretID(), s.Generation())
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestSession_Rewrap(t *testing.T) {
	codec := NewSecretCodec()
	s := newTestSession(t, 3)
	newSP, err := RandomBytes(seededReader(30), SaltedPasswordSize)
	require.NoError(t, err)

	next, wrapped, err := s.Rewrap(codec, newSP)
	require.NoError(t, err)

	assert.Equal(t, s.Generation()+1, next.Generation())
	assert.Equal(t, s.MasterSecret(), next.MasterSecret())
	assert.Equal(t, newSP, next.SaltedPassword())
	assert.NotEqual(t, newSP, s.SaltedPassword(), "old session must be untouched")

	opened, err := OpenSession(codec, wrapped, newSP, next.SecretID(), next.Generation())
	require.NoError(t, err)
	assert.Equal(t, s.MasterSecret(), opened.MasterSecret())
}

func TestSession_Rotate(t *testing.T) {
	codec := NewSecretCodec()
	s := newTestSession(t, 4)
	newSP, err := RandomBytes(seededReader(40), SaltedPasswordSize)
	require.NoError(t, err)

	next, wrapped, err := s.Rotate(codec, newSP)
	require.NoError(t, err)

	assert.Equal(t, s.Generation()+1, next.Generation())
	assert.NotEqual(t, s.MasterSecret(), next.MasterSecret())
	assert.NotEqual(t, s.SecretID(), next.SecretID())
	assert.True(t, codec.Validate(next.MasterSecret()))

	unwrapped, err := codec.Unwrap(wrapped, newSP)
	require.NoError(t, err)
	assert.Equal(t, next.MasterSecret(), unwrapped)
}
