// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the command line client uses
// to talk to the file cipher server.
//
// The primary abstraction is [ServerAdapter], which decouples the commands
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) that keeps the server session in a cookie jar, so
// a [ServerAdapter.Download] receives the result of the preceding
// [ServerAdapter.Encrypt] or [ServerAdapter.Decrypt] call.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBadRequest] for
// 400, [ErrNothingToDownload] for the download redirect).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the file cipher server.
// Implementations are responsible for request encoding, session handling and
// mapping transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// Encrypt uploads data under fileName and returns the Base64 artifact
	// produced by the server. The artifact also becomes the session's
	// pending download.
	Encrypt(ctx context.Context, fileName string, data []byte, password string) (string, error)

	// Decrypt uploads a Base64 artifact and returns the server's preview of
	// the recovered plaintext. The full plaintext becomes the session's
	// pending download.
	Decrypt(ctx context.Context, fileName string, data []byte, password string) (string, error)

	// Download fetches the pending result of the current session. The
	// server hands it out once; a second call returns [ErrNothingToDownload].
	Download(ctx context.Context) ([]byte, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
