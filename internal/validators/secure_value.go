package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-id/models"
)

// Field name constants used to restrict validation to a subset of a
// [models.SaveValueRequest].
const (
	// FieldType targets the secure value type.
	FieldType = "type"

	// FieldData targets the plaintext JSON fields.
	FieldData = "data"

	// FieldFiles targets the document scans.
	FieldFiles = "files"
)

// MaxFiles bounds the number of scans attached to one value.
const MaxFiles = 20

// MinPasswordLength is the shortest accepted vault password.
const MinPasswordLength = 8

const dateLayout = "02.01.2006"

var (
	personalFields = []string{
		"first_name", "last_name", "middle_name", "birth_date", "gender",
		"country_code", "residence_country_code",
	}
	documentFields = []string{"document_no", "expiry_date"}
	addressFields  = []string{"street_line1", "street_line2", "city", "state", "country_code", "post_code"}
)

// dataFields lists the accepted field names per type that carries data.
var dataFields = map[models.SecureValueType][]string{
	models.PersonalDetails:  personalFields,
	models.Passport:         documentFields,
	models.DriverLicense:    documentFields,
	models.IdentityCard:     documentFields,
	models.InternalPassport: documentFields,
	models.Address:          addressFields,
	models.PhoneNumber:      {"phone"},
	models.Email:            {"email"},
}

// SecureValueValidator checks [models.SaveValueRequest] values before they
// are encrypted, and vault passwords.
type SecureValueValidator struct{}

// NewSecureValueValidator returns a [Validator] for secure values.
func NewSecureValueValidator() Validator {
	return &SecureValueValidator{}
}

// Validate accepts a [models.SaveValueRequest] (value or pointer) or a
// [Password].
func (v *SecureValueValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveValueRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.SaveValueRequest:
		return v.validateRequest(ctx, *value, fields...)
	case Password:
		return validatePassword(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *SecureValueValidator) validateRequest(_ context.Context, req models.SaveValueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldData, FieldFiles}
		if len(req.Data) == 0 && len(req.Files) == 0 {
			if !req.Type.IsValid() {
				return ErrInvalidType
			}
			return ErrEmptyValue
		}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !req.Type.IsValid() {
				return ErrInvalidType
			}
		case FieldData:
			if err := validateData(req.Type, req.Data); err != nil {
				return err
			}
		case FieldFiles:
			if err := validateFiles(req.Type, req.Files); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateData(t models.SecureValueType, data map[string]string) error {
	if len(data) == 0 {
		return nil
	}
	if !t.AcceptsData() {
		return ErrDataNotAllowed
	}

	allowed := dataFields[t]
	for name, value := range data {
		if !contains(allowed, name) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownDataField, t, name)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyFieldValue, name)
		}

		switch name {
		case "birth_date", "expiry_date":
			if _, err := time.Parse(dateLayout, value); err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidDate, name)
			}
		case "email":
			if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
				return ErrInvalidEmail
			}
		case "phone":
			if !isPhone(value) {
				return ErrInvalidPhone
			}
		}
	}

	return nil
}

func validateFiles(t models.SecureValueType, files [][]byte) error {
	if len(files) == 0 {
		return nil
	}
	if !t.AcceptsFiles() {
		return ErrFilesNotAllowed
	}
	if len(files) > MaxFiles {
		return fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(files), MaxFiles)
	}
	for i, f := range files {
		if len(f) == 0 {
			return fmt.Errorf("%w: index %d", ErrEmptyFile, i)
		}
	}
	return nil
}

// isPhone accepts an optional leading '+' followed by 5 to 15 digits.
func isPhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if len(s) < 5 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DataFields returns the accepted data field names for t.
func DataFields(t models.SecureValueType) []string {
	return append([]string(nil), dataFields[t]...)
}
