package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
	"github.com/MKhiriev/go-file-cipher/models"
)

// Multipart form field names used by the pages and the client.
const (
	formFieldFile     = "file"
	formFieldPassword = "password"
)

// multipartMemory is the part of an upload kept in memory before
// ParseMultipartForm spills to temporary files.
const multipartMemory = 32 << 20

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := readCipherRequest(r)
	if err != nil {
		writeCipherError(w, r, err)
		return
	}

	sessionID, _ := utils.GetSessionIDFromContext(r.Context())
	result, err := h.services.CipherService.EncryptFile(r.Context(), sessionID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting file")
		writeCipherError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CipherResponse{Success: true, Result: result}, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := readCipherRequest(r)
	if err != nil {
		writeCipherError(w, r, err)
		return
	}

	sessionID, _ := utils.GetSessionIDFromContext(r.Context())
	decrypted, err := h.services.CipherService.DecryptFile(r.Context(), sessionID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error decrypting file")
		writeCipherError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CipherResponse{Success: true, Result: decrypted.Preview}, http.StatusOK)
}

// readCipherRequest extracts the uploaded file and password from a multipart
// form. A missing file leaves Data nil and a missing password leaves it
// empty; rejecting those is up to the service.
func readCipherRequest(r *http.Request) (models.CipherRequest, error) {
	var req models.CipherRequest

	err := r.ParseMultipartForm(multipartMemory)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, http.ErrNotMultipart):
	case errors.As(err, &maxBytesErr):
		return req, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	default:
		return req, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	req.Password = r.FormValue(formFieldPassword)

	file, header, err := r.FormFile(formFieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, nil
		}
		return req, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	req.FileName = header.Filename
	req.Data = data

	return req, nil
}

func writeCipherError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("cipher request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("cipher request rejected")
	}

	utils.WriteJSON(w, models.CipherResponse{Success: false, Error: messageFromError(err)}, status)
}
