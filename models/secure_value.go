// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecureValueType names the kind of identity element a [SecureValue] holds.
// The value determines which plaintext fields are expected and whether
// document scans may be attached.
type SecureValueType string

const (
	// PersonalDetails holds name, birth date, gender, citizenship.
	PersonalDetails SecureValueType = "personal_details"

	// Passport holds the main page fields of a passport and its scans.
	Passport SecureValueType = "passport"

	// DriverLicense holds a driving licence and its scans.
	DriverLicense SecureValueType = "driver_license"

	// IdentityCard holds a national identity card and its scans.
	IdentityCard SecureValueType = "identity_card"

	// InternalPassport holds an internal (domestic) passport and its scans.
	InternalPassport SecureValueType = "internal_passport"

	// Address holds a residential address.
	Address SecureValueType = "address"

	// UtilityBill holds scans proving the address.
	UtilityBill SecureValueType = "utility_bill"

	// BankStatement holds scans of a bank statement.
	BankStatement SecureValueType = "bank_statement"

	// RentalAgreement holds scans of a rental agreement.
	RentalAgreement SecureValueType = "rental_agreement"

	// PassportRegistration holds scans of a registration page.
	PassportRegistration SecureValueType = "passport_registration"

	// TemporaryRegistration holds scans of a temporary registration.
	TemporaryRegistration SecureValueType = "temporary_registration"

	// PhoneNumber holds a verified phone number.
	PhoneNumber SecureValueType = "phone_number"

	// Email holds a verified email address.
	Email SecureValueType = "email"
)

// AllSecureValueTypes lists every supported type in display order.
var AllSecureValueTypes = []SecureValueType{
	PersonalDetails,
	Passport,
	DriverLicense,
	IdentityCard,
	InternalPassport,
	Address,
	UtilityBill,
	BankStatement,
	RentalAgreement,
	PassportRegistration,
	TemporaryRegistration,
	PhoneNumber,
	Email,
}

// IsValid reports whether t is one of the supported types.
func (t SecureValueType) IsValid() bool {
	for _, v := range AllSecureValueTypes {
		if v == t {
			return true
		}
	}
	return false
}

// AcceptsFiles reports whether document scans may be attached to a value
// of this type.
func (t SecureValueType) AcceptsFiles() bool {
	switch t {
	case PersonalDetails, Address, PhoneNumber, Email:
		return false
	default:
		return t.IsValid()
	}
}

// AcceptsData reports whether a value of this type carries JSON fields.
func (t SecureValueType) AcceptsData() bool {
	switch t {
	case UtilityBill, BankStatement, RentalAgreement, PassportRegistration, TemporaryRegistration:
		return false
	default:
		return t.IsValid()
	}
}

// SecureValue is the persisted, fully encrypted form of one identity
// element. It references blobs by content hash; the blobs themselves live
// in the blob store and may be shared between values.
type SecureValue struct {
	// ID is a client-generated UUIDv7.
	ID string `json:"id"`

	// Type is the kind of element. At most one value per type is stored.
	Type SecureValueType `json:"type"`

	// DataHash is the content hash of the encrypted JSON field blob, or
	// empty when the value has no fields.
	DataHash []byte `json:"data_hash,omitempty"`

	// FileHashes are the content hashes of the encrypted document scans,
	// in attachment order.
	FileHashes [][]byte `json:"file_hashes,omitempty"`

	// Generation is the master secret generation the blobs were written under.
	Generation uint64 `json:"generation"`

	// CreatedAt is the timestamp when the value was first stored.
	CreatedAt *time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at"`
}

// DecryptedValue is the plaintext view of a [SecureValue] as returned to the
// caller after decryption. It is never persisted.
type DecryptedValue struct {
	ID    string            `json:"id"`
	Type  SecureValueType   `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
	Files [][]byte          `json:"-"`
}

// SaveValueRequest is the plaintext input for storing one identity element.
type SaveValueRequest struct {
	Type  SecureValueType
	Data  map[string]string
	Files [][]byte
}
