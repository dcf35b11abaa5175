package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/crypto"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/MKhiriev/go-file-cipher/internal/store"
	"github.com/MKhiriev/go-file-cipher/internal/validators"
)

// User-facing messages returned in CipherResponse.Error.
const (
	msgMissingInput  = "Please choose a file and enter a password."
	msgNotText       = "File data is not valid UTF-8 text or the file is corrupted."
	msgFileTooLarge  = "File is too large."
	msgMalformedForm = "Invalid upload form."
	msgInternalError = "Unexpected server error. Please try again."
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	validators.ErrEmptyFile:     http.StatusBadRequest,
	validators.ErrEmptyPassword: http.StatusBadRequest,
	validators.ErrNotText:       http.StatusBadRequest,
	validators.ErrFileTooLarge:  http.StatusBadRequest,

	crypto.ErrInvalidEncoding:  http.StatusBadRequest,
	crypto.ErrFrameTooShort:    http.StatusBadRequest,
	crypto.ErrInvalidBlockSize: http.StatusBadRequest,
	crypto.ErrInvalidPadding:   http.StatusBadRequest,

	ErrMalformedForm:   http.StatusBadRequest,
	ErrRequestTooLarge: http.StatusBadRequest,

	store.ErrNoPendingResult: http.StatusNotFound,
	store.ErrSavingResult:    http.StatusInternalServerError,
	store.ErrLoadingResult:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError turns err into the text shown to the user. Internal
// failures get a generic message so that nothing about the server leaks.
func messageFromError(err error) string {
	var (
		decodeErr *crypto.DecodeError
		cryptoErr *crypto.CryptoError
	)

	switch {
	case errors.Is(err, validators.ErrEmptyFile), errors.Is(err, validators.ErrEmptyPassword):
		return msgMissingInput
	case errors.Is(err, validators.ErrNotText):
		return msgNotText
	case errors.Is(err, validators.ErrFileTooLarge), errors.Is(err, ErrRequestTooLarge):
		return msgFileTooLarge
	case errors.Is(err, ErrMalformedForm):
		return msgMalformedForm
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Invalid file: not valid Base64 text (%v). Make sure you upload a file produced by encryption.", decodeErr.Err)
	case errors.As(err, &cryptoErr):
		return fmt.Sprintf("Wrong password or invalid file: %v. Please check the password or make sure the file was encrypted correctly.", cryptoErr.Reason)
	default:
		return msgInternalError
	}
}
