package config

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/inhies/go-bytesize"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadSize   = 10 * bytesize.MB
	defaultResultsTTL      = 10 * time.Minute
	defaultResultsMaxCost  = 256 << 20

	sessionKeySize = 24
)

// defaults returns the lowest-priority configuration layer. SessionKey is
// random on every call.
func defaults() (*StructuredConfig, error) {
	key := make([]byte, sessionKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:       "dev",
			SessionKey:    hex.EncodeToString(key),
			MaxUploadSize: defaultMaxUploadSize,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Storage: Storage{
			Results: Results{
				Mode:    ResultsModeLocal,
				TTL:     defaultResultsTTL,
				MaxCost: defaultResultsMaxCost,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}, nil
}
