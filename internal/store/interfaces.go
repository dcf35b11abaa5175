package store

import (
	"context"

	"github.com/MKhiriev/go-file-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/result_store_mock.go -package=mock

// ResultStore keeps at most one pending result per session until that
// session downloads it. Implementations are safe for concurrent use.
type ResultStore interface {
	// Put stores result for sessionID, replacing any result that has not
	// been downloaded yet. The entry expires after the configured TTL.
	Put(ctx context.Context, sessionID string, result models.PendingResult) error

	// Take returns the pending result for sessionID and removes it, so a
	// second call returns [ErrNoPendingResult].
	Take(ctx context.Context, sessionID string) (models.PendingResult, error)

	// Close releases the resources held by the store.
	Close()
}
