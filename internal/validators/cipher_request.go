package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-file-cipher/models"
)

// Field name constants used to restrict validation of a CipherRequest to a
// subset of its rules.
const (
	// FieldData requires an uploaded file. An empty file is accepted.
	FieldData = "data"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldSize enforces the configured upload size limit.
	FieldSize = "size"

	// FieldText requires the uploaded bytes to be valid UTF-8. Encrypted
	// files are Base64 text, so decryption input is checked with it.
	FieldText = "text"
)

// CipherRequestValidator implements Validator for models.CipherRequest.
type CipherRequestValidator struct {
	maxSize int64
}

// NewCipherRequestValidator returns a Validator that rejects files larger
// than maxSize bytes. A non-positive maxSize disables the size rule.
func NewCipherRequestValidator(maxSize int64) Validator {
	return &CipherRequestValidator{maxSize: maxSize}
}

// Validate accepts models.CipherRequest and *models.CipherRequest. Without
// fields it checks FieldData, FieldPassword and FieldSize.
func (v *CipherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CipherRequest:
		return v.validateCipherRequest(ctx, value, fields...)
	case *models.CipherRequest:
		if value == nil {
			return ErrEmptyFile
		}
		return v.validateCipherRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CipherRequestValidator) validateCipherRequest(ctx context.Context, req models.CipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData, FieldPassword, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if req.Data == nil {
				return ErrEmptyFile
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldSize:
			if v.maxSize > 0 && int64(len(req.Data)) > v.maxSize {
				return fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, len(req.Data), v.maxSize)
			}
		case FieldText:
			if !utf8.Valid(req.Data) {
				return ErrNotText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
