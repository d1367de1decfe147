// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before anything is encrypted.
//
// Secure values are checked per type: which data fields a type accepts,
// whether it takes document scans, and the format of dates, e-mail
// addresses and phone numbers. Vault passwords are checked for length.
// Validation may be narrowed to named fields ([FieldType], [FieldData],
// [FieldFiles]).
package validators

import "context"

// Validator checks obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
