package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFile     = errors.New("no file provided")
	ErrEmptyPassword = errors.New("password is required")
	ErrFileTooLarge  = errors.New("file is too large")
	ErrNotText       = errors.New("file is not text")
)
