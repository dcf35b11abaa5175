// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [DecodeError] and [CryptoError]. Match them with
// [errors.Is].
var (
	// ErrInvalidEncoding is returned when the input is not valid standard
	// Base64 text.
	ErrInvalidEncoding = errors.New("invalid base64 encoding")

	// ErrFrameTooShort is returned when the decoded frame is shorter than the
	// 16-byte IV region.
	ErrFrameTooShort = errors.New("frame too short")

	// ErrInvalidBlockSize is returned when the ciphertext after the IV is not
	// a multiple of the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")

	// ErrInvalidPadding is returned when the decrypted data does not end in
	// well-formed PKCS#7 padding. With this format it is the only signal of
	// a wrong password.
	ErrInvalidPadding = errors.New("bad padding")
)

// DecodeError reports input that could not be Base64-decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidEncoding, e.Err)
}

// Unwrap exposes both [ErrInvalidEncoding] and the underlying decoder error.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrInvalidEncoding, e.Err}
}

// CryptoError reports a frame that decoded correctly but could not be
// decrypted into a valid plaintext.
type CryptoError struct {
	// Reason is one of the sentinel errors declared in this package.
	Reason error
}

func (e *CryptoError) Error() string {
	return "decryption failed: " + e.Reason.Error()
}

func (e *CryptoError) Unwrap() error {
	return e.Reason
}
