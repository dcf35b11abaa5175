// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading an upload form. Callers can match
// against them with [errors.Is].
var (
	// ErrMalformedForm is returned when the request body cannot be parsed as
	// a multipart form or the file part cannot be read.
	ErrMalformedForm = errors.New("malformed upload form")

	// ErrRequestTooLarge is returned when the request body exceeds the upload
	// limit enforced by withBodyLimit.
	ErrRequestTooLarge = errors.New("request body too large")
)
