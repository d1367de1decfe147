// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-id/models"
)

func TestSecureValueValidator_Validate(t *testing.T) {
	v := NewSecureValueValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid personal details",
			obj: models.SaveValueRequest{
				Type: models.PersonalDetails,
				Data: map[string]string{"first_name": "Ivan", "last_name": "Petrov", "birth_date": "01.02.1990"},
			},
		},
		{
			name: "valid passport pointer with scans",
			obj: &models.SaveValueRequest{
				Type:  models.Passport,
				Data:  map[string]string{"document_no": "4509 123456", "expiry_date": "31.12.2030"},
				Files: [][]byte{{1, 2, 3}},
			},
		},
		{
			name: "valid utility bill with files only",
			obj:  models.SaveValueRequest{Type: models.UtilityBill, Files: [][]byte{{1}}},
		},
		{
			name: "valid email",
			obj:  models.SaveValueRequest{Type: models.Email, Data: map[string]string{"email": "a@example.com"}},
		},
		{
			name: "valid phone",
			obj:  models.SaveValueRequest{Type: models.PhoneNumber, Data: map[string]string{"phone": "+79990001122"}},
		},
		{
			name:    "unsupported object",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "invalid type",
			obj:     models.SaveValueRequest{Type: "bank_card", Data: map[string]string{"x": "y"}},
			wantErr: ErrInvalidType,
		},
		{
			name:    "empty value",
			obj:     models.SaveValueRequest{Type: models.Passport},
			wantErr: ErrEmptyValue,
		},
		{
			name:    "data on files-only type",
			obj:     models.SaveValueRequest{Type: models.BankStatement, Data: map[string]string{"document_no": "1"}},
			wantErr: ErrDataNotAllowed,
		},
		{
			name:    "files on data-only type",
			obj:     models.SaveValueRequest{Type: models.Address, Data: map[string]string{"city": "Kazan"}, Files: [][]byte{{1}}},
			wantErr: ErrFilesNotAllowed,
		},
		{
			name:    "unknown data field",
			obj:     models.SaveValueRequest{Type: models.Passport, Data: map[string]string{"colour": "red"}},
			wantErr: ErrUnknownDataField,
		},
		{
			name:    "blank field value",
			obj:     models.SaveValueRequest{Type: models.Address, Data: map[string]string{"city": "  "}},
			wantErr: ErrEmptyFieldValue,
		},
		{
			name:    "bad date",
			obj:     models.SaveValueRequest{Type: models.PersonalDetails, Data: map[string]string{"birth_date": "1990-02-01"}},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "bad email",
			obj:     models.SaveValueRequest{Type: models.Email, Data: map[string]string{"email": "Bob <bob@example.com>"}},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "bad phone",
			obj:     models.SaveValueRequest{Type: models.PhoneNumber, Data: map[string]string{"phone": "12-34"}},
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "empty file",
			obj:     models.SaveValueRequest{Type: models.Passport, Files: [][]byte{{1}, {}}},
			wantErr: ErrEmptyFile,
		},
		{
			name:    "too many files",
			obj:     models.SaveValueRequest{Type: models.Passport, Files: make([][]byte, MaxFiles+1)},
			wantErr: ErrTooManyFiles,
		},
		{
			name:   "scoped to type only",
			obj:    models.SaveValueRequest{Type: models.Passport},
			fields: []string{FieldType},
		},
		{
			name:    "unknown scope field",
			obj:     models.SaveValueRequest{Type: models.Passport},
			fields:  []string{"bogus"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "short password",
			obj:     Password("short"),
			wantErr: ErrInvalidPassword,
		},
		{
			name: "long enough password",
			obj:  Password(strings.Repeat("п", MinPasswordLength)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDataFields_ReturnsCopy(t *testing.T) {
	fields := DataFields(models.Email)
	require.Equal(t, []string{"email"}, fields)

	fields[0] = "changed"
	assert.Equal(t, []string{"email"}, DataFields(models.Email))
	assert.Empty(t, DataFields(models.UtilityBill))
}
