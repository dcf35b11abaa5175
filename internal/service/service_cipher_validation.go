package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-cipher/internal/validators"
	"github.com/MKhiriev/go-file-cipher/models"
)

// CipherValidationService rejects malformed requests before they reach the
// wrapped CipherService. Validation failures are returned wrapped in
// ErrInvalidDataProvided together with the validator's own sentinel.
type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService(maxUploadSize int64) CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewCipherRequestValidator(maxUploadSize),
	}
}

func (v *CipherValidationService) EncryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.EncryptFile(ctx, sessionID, req)
}

func (v *CipherValidationService) DecryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (models.DecryptedFile, error) {
	// encrypted files are Base64 text
	err := v.validator.Validate(ctx, req,
		validators.FieldData,
		validators.FieldPassword,
		validators.FieldSize,
		validators.FieldText,
	)
	if err != nil {
		return models.DecryptedFile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DecryptFile(ctx, sessionID, req)
}

func (v *CipherValidationService) TakeDownload(ctx context.Context, sessionID string) (models.PendingResult, error) {
	return v.inner.TakeDownload(ctx, sessionID)
}

func (v *CipherValidationService) Wrap(wrapper CipherService) CipherService {
	v.inner = wrapper
	return v
}
