package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureValueType_IsValid(t *testing.T) {
	for _, v := range AllSecureValueTypes {
		assert.True(t, v.IsValid(), v)
	}
	assert.False(t, SecureValueType("bank_card").IsValid())
	assert.False(t, SecureValueType("").IsValid())
}

func TestSecureValueType_Capabilities(t *testing.T) {
	tests := []struct {
		typ   SecureValueType
		data  bool
		files bool
	}{
		{PersonalDetails, true, false},
		{Passport, true, true},
		{Address, true, false},
		{UtilityBill, false, true},
		{Email, true, false},
		{SecureValueType("unknown"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.data, tt.typ.AcceptsData())
			assert.Equal(t, tt.files, tt.typ.AcceptsFiles())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
