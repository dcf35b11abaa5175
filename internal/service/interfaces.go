package service

import (
	"context"

	"github.com/MKhiriev/go-file-cipher/models"
)

// CipherService encrypts and decrypts uploaded files and hands the last
// result of a session over for download exactly once.
type CipherService interface {
	// EncryptFile encrypts req.Data under req.Password, keeps the Base64 text
	// as the session's pending result and returns it.
	EncryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (string, error)

	// DecryptFile decrypts the Base64 text in req.Data, keeps the plaintext as
	// the session's pending result and returns it with a display preview.
	DecryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (models.DecryptedFile, error)

	// TakeDownload returns the session's pending result and forgets it.
	TakeDownload(ctx context.Context, sessionID string) (models.PendingResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// validating.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}
