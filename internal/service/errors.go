package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrVaultNotInitialized     = errors.New("vault is not initialized")
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")
	ErrVaultLocked             = errors.New("vault is locked")
	ErrStaleSession            = errors.New("session is older than the active secret generation")

	ErrValueNotFound  = errors.New("secure value not found")
	ErrCorruptedValue = errors.New("secure value failed integrity check")
)
