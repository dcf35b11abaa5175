package store

import (
	"fmt"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
)

// NewResultStore builds the [ResultStore] selected by cfg.Mode.
func NewResultStore(cfg config.Results, logger *logger.Logger) (ResultStore, error) {
	logger.Info().Str("mode", cfg.Mode).Dur("ttl", cfg.TTL).Msg("creating result store...")

	switch cfg.Mode {
	case config.ResultsModeLocal, "":
		return NewLocalResultStore(cfg)
	case config.ResultsModeRemote:
		return NewRemoteResultStore(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreMode, cfg.Mode)
	}
}
