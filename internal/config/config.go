// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
)

// StructuredConfig is the top-level configuration container for the
// go-file-cipher server. It is populated by merging values from command-line
// flags, environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, session signing key
	// and upload limits.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the pending-result store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the command line client uses to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SessionKey signs the session cookie that ties a browser to its pending
	// download. A random key is generated at startup when empty, which
	// invalidates all sessions on restart.
	// Env: APP_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`

	// MaxUploadSize caps the size of an uploaded file (e.g. "10MB").
	// Env: APP_MAX_UPLOAD_SIZE
	MaxUploadSize bytesize.ByteSize `env:"MAX_UPLOAD_SIZE"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Results configures where pending downloads are kept.
	Results Results `envPrefix:"RESULTS_"`
}

// Results selects and tunes the pending-result store.
type Results struct {
	// Mode is "local" (in-process ristretto cache) or "remote" (valkey).
	// Env: STORAGE_RESULTS_MODE
	Mode string `env:"MODE"`

	// Address is the valkey "host:port" used in remote mode.
	// Env: STORAGE_RESULTS_ADDRESS
	Address string `env:"ADDRESS"`

	// TTL is how long an undownloaded result is kept.
	// Env: STORAGE_RESULTS_TTL
	TTL time.Duration `env:"TTL"`

	// MaxCost is the total number of bytes the local store may hold before
	// it starts evicting.
	// Env: STORAGE_RESULTS_MAX_COST
	MaxCost int64 `env:"MAX_COST"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme
	// (e.g. "localhost:8080" or "https://cipher.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request the client sends.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Store modes accepted by [Results.Mode].
const (
	ResultsModeLocal  = "local"
	ResultsModeRemote = "remote"
)

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Command-line flags (os.Args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig loads the configuration used by the command line client.
// The client owns its flags, so only environment, JSON and defaults are
// consulted here.
func GetClientConfig() (*Adapter, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &cfg.Adapter, cfg.Adapter.validate()
}
