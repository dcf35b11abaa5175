// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/models"
	"github.com/valkey-io/valkey-go"
)

const remoteKeyPrefix = "file-cipher:pending"

// remoteResultStore keeps pending results in valkey so that several server
// instances behind a load balancer share them. Take uses GETDEL, which is
// atomic on the server.
type remoteResultStore struct {
	client valkey.Client
	ttl    time.Duration
}

// NewRemoteResultStore connects to the valkey server at cfg.Address.
func NewRemoteResultStore(cfg config.Results) (ResultStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{cfg.Address}})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to valkey at %s: %w", cfg.Address, err)
	}

	return &remoteResultStore{client: client, ttl: cfg.TTL}, nil
}

func (s *remoteResultStore) Put(ctx context.Context, sessionID string, result models.PendingResult) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingResult, err)
	}

	cmd := s.client.B().Set().Key(remoteKey(sessionID)).Value(valkey.BinaryString(payload)).Ex(s.ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingResult, err)
	}

	return nil
}

func (s *remoteResultStore) Take(ctx context.Context, sessionID string) (models.PendingResult, error) {
	if sessionID == "" {
		return models.PendingResult{}, ErrEmptySessionID
	}

	cmd := s.client.B().Getdel().Key(remoteKey(sessionID)).Build()
	payload, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return models.PendingResult{}, ErrNoPendingResult
		}
		return models.PendingResult{}, fmt.Errorf("%w: %w", ErrLoadingResult, err)
	}

	return decodePendingResult(payload)
}

func (s *remoteResultStore) Close() {
	s.client.Close()
}

func remoteKey(sessionID string) string {
	return remoteKeyPrefix + ":" + sessionID
}

func decodePendingResult(payload []byte) (models.PendingResult, error) {
	var result models.PendingResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return models.PendingResult{}, fmt.Errorf("%w: %w", ErrLoadingResult, err)
	}

	return result, nil
}
