// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DownloadFileName is the fixed name under which every pending result is
// offered for download.
const DownloadFileName = "Data.txt"

// ResultKind tells whether a pending result holds ciphertext or plaintext.
type ResultKind string

const (
	// Encrypted marks a pending result holding Base64 ciphertext.
	Encrypted ResultKind = "encrypted"
	// Decrypted marks a pending result holding recovered plaintext.
	Decrypted ResultKind = "decrypted"
)

// CipherRequest is an uploaded file together with the password it should be
// encrypted or decrypted with.
type CipherRequest struct {
	// FileName is the name reported by the client. Informational only.
	FileName string

	// Data holds the raw uploaded bytes. A nil slice means no file was sent;
	// an empty non-nil slice is an empty file.
	Data []byte

	// Password is used to derive the cipher key. It is never stored or logged.
	Password string
}

// PendingResult is the output of the last encrypt or decrypt call of a
// session, kept server-side until the session downloads it once.
type PendingResult struct {
	Kind     ResultKind `json:"kind"`
	FileName string     `json:"file_name"`
	Data     []byte     `json:"data"`
}

// DecryptedFile is the outcome of a successful decryption.
type DecryptedFile struct {
	// Data is the recovered plaintext.
	Data []byte

	// Preview is Data as text, or a notice when Data is not valid UTF-8.
	Preview string
}
