// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [ResultStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNoPendingResult is returned by Take when the session has nothing to
	// download: it never produced a result, already downloaded it, or the
	// result expired.
	ErrNoPendingResult = errors.New("no pending result")

	// ErrEmptySessionID is returned when a store operation is called without
	// a session identifier.
	ErrEmptySessionID = errors.New("empty session id")

	// ErrSavingResult is returned when the backend refuses or fails to store
	// a result.
	ErrSavingResult = errors.New("error saving pending result")

	// ErrLoadingResult is returned when the backend fails while reading a
	// result back.
	ErrLoadingResult = errors.New("error loading pending result")

	// ErrUnknownStoreMode is returned by [NewResultStore] for a mode other
	// than "local" or "remote".
	ErrUnknownStoreMode = errors.New("unknown result store mode")
)
