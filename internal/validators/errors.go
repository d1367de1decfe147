package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidType      = errors.New("invalid secure value type")
	ErrEmptyValue       = errors.New("secure value has neither data nor files")
	ErrDataNotAllowed   = errors.New("secure value type does not accept data fields")
	ErrFilesNotAllowed  = errors.New("secure value type does not accept files")
	ErrUnknownDataField = errors.New("unknown data field for secure value type")
	ErrEmptyFieldValue  = errors.New("data field value is empty")
	ErrInvalidDate      = errors.New("invalid date, expected DD.MM.YYYY")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrEmptyFile        = errors.New("file is empty")
	ErrTooManyFiles     = errors.New("too many files")
	ErrInvalidPassword  = errors.New("password is too short")
)
