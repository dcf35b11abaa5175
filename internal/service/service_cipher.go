package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-file-cipher/internal/crypto"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/store"
	"github.com/MKhiriev/go-file-cipher/models"
)

// NotTextPreview replaces the preview of a decrypted file that is not valid
// UTF-8. The downloadable result still holds the exact bytes.
const NotTextPreview = "[File is not text or uses another encoding. Content may not display correctly.]"

type cipherService struct {
	codec   crypto.CipherCodec
	results store.ResultStore

	logger *logger.Logger
}

func NewCipherService(codec crypto.CipherCodec, results store.ResultStore, logger *logger.Logger) CipherService {
	return &cipherService{
		codec:   codec,
		results: results,
		logger:  logger,
	}
}

func (c *cipherService) EncryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (string, error) {
	text, _ := c.codec.Encrypt(req.Data, req.Password)

	result := models.PendingResult{
		Kind:     models.Encrypted,
		FileName: models.DownloadFileName,
		Data:     []byte(text),
	}
	if err := c.results.Put(ctx, sessionID, result); err != nil {
		return "", fmt.Errorf("error saving encrypted file: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int("input_size", len(req.Data)).
		Int("output_size", len(text)).
		Msg("file encrypted")

	return text, nil
}

func (c *cipherService) DecryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (models.DecryptedFile, error) {
	plaintext, err := c.codec.Decrypt(string(req.Data), req.Password)
	if err != nil {
		return models.DecryptedFile{}, fmt.Errorf("error decrypting file: %w", err)
	}

	result := models.PendingResult{
		Kind:     models.Decrypted,
		FileName: models.DownloadFileName,
		Data:     plaintext,
	}
	if err = c.results.Put(ctx, sessionID, result); err != nil {
		return models.DecryptedFile{}, fmt.Errorf("error saving decrypted file: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int("input_size", len(req.Data)).
		Int("output_size", len(plaintext)).
		Msg("file decrypted")

	return models.DecryptedFile{Data: plaintext, Preview: preview(plaintext)}, nil
}

func (c *cipherService) TakeDownload(ctx context.Context, sessionID string) (models.PendingResult, error) {
	return c.results.Take(ctx, sessionID)
}

func preview(plaintext []byte) string {
	if !utf8.Valid(plaintext) {
		return NotTextPreview
	}
	return string(plaintext)
}
