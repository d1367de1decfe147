package validators

import "unicode/utf8"

// Password is a vault password submitted for validation.
type Password string

func validatePassword(p Password) error {
	if utf8.RuneCountInString(string(p)) < MinPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}
