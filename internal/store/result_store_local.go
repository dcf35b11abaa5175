package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/models"
	"github.com/dgraph-io/ristretto"
)

// localResultStore keeps pending results in an in-process ristretto cache.
// The cost of an entry is the size of its payload, so MaxCost bounds the
// memory held by undownloaded results.
type localResultStore struct {
	cache   *ristretto.Cache
	ttl     time.Duration
	maxCost int64

	// mu makes Take a single get-and-delete step.
	mu sync.Mutex
}

// NewLocalResultStore creates a [ResultStore] backed by ristretto.
func NewLocalResultStore(cfg config.Results) (ResultStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        1e5,
		MaxCost:            cfg.MaxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create local result store: %w", err)
	}

	return &localResultStore{cache: cache, ttl: cfg.TTL, maxCost: cfg.MaxCost}, nil
}

func (s *localResultStore) Put(ctx context.Context, sessionID string, result models.PendingResult) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	if cost(result) > s.maxCost {
		return fmt.Errorf("%w: result of %d bytes exceeds store capacity", ErrSavingResult, len(result.Data))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok := s.cache.SetWithTTL(sessionID, result, cost(result), s.ttl); !ok {
		return ErrSavingResult
	}
	// make the write visible to the next Take
	s.cache.Wait()

	// the admission policy may still have rejected the entry
	if _, found := s.cache.Get(sessionID); !found {
		return ErrSavingResult
	}

	return nil
}

func (s *localResultStore) Take(ctx context.Context, sessionID string) (models.PendingResult, error) {
	if sessionID == "" {
		return models.PendingResult{}, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.cache.Get(sessionID)
	if !ok {
		return models.PendingResult{}, ErrNoPendingResult
	}
	s.cache.Del(sessionID)

	result, ok := value.(models.PendingResult)
	if !ok {
		return models.PendingResult{}, fmt.Errorf("%w: unexpected value type %T", ErrLoadingResult, value)
	}

	return result, nil
}

func (s *localResultStore) Close() {
	s.cache.Close()
}

func cost(result models.PendingResult) int64 {
	return int64(len(result.Data)) + 1
}
