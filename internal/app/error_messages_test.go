package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-secure-id/internal/service"
	"github.com/MKhiriev/go-secure-id/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"short password", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPassword), MsgPasswordTooShort},
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), MsgInvalidDataProvided},
		{"wrong password", fmt.Errorf("%w: bad", service.ErrWrongPassword), MsgWrongPassword},
		{"not initialized", service.ErrVaultNotInitialized, MsgVaultNotInitialized},
		{"already initialized", service.ErrVaultAlreadyInitialized, MsgVaultAlreadyInitialized},
		{"stale", service.ErrStaleSession, MsgPasswordChangedConcurrently},
		{"not found", fmt.Errorf("%w: email", service.ErrValueNotFound), MsgValueNotFound},
		{"corrupted", service.ErrCorruptedValue, MsgValueCorrupted},
		{"other", errors.New("disk on fire"), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
