// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"strings"
)

// KeySize is the length of a derived AES-128 key.
const KeySize = 16

// FixedIV is the initialization vector used for every encryption and assumed
// by every decryption.
var FixedIV = [aes.BlockSize]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// DeriveKey turns password into a 16-byte key: its UTF-8 bytes right-padded
// with zero bytes, or truncated to the first 16 bytes.
func DeriveKey(password string) [KeySize]byte {
	var key [KeySize]byte
	copy(key[:], password)
	return key
}

// codec is the AES-128-CBC implementation of [CipherCodec].
type codec struct{}

// NewCipherCodec returns the AES-128-CBC [CipherCodec].
func NewCipherCodec() CipherCodec {
	return codec{}
}

// Encrypt implements [CipherCodec].
func (codec) Encrypt(plaintext []byte, password string) (string, []byte) {
	block := newBlock(password)
	iv := FixedIV

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	frame := make([]byte, aes.BlockSize+len(padded))
	copy(frame, iv[:])
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(frame[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(frame), frame
}

// Decrypt implements [CipherCodec].
//
// The IV stored in the frame is skipped, not compared: frames are always
// decrypted with FixedIV.
func (codec) Decrypt(base64Text string, password string) ([]byte, error) {
	frame, err := base64.StdEncoding.DecodeString(strings.TrimSpace(base64Text))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	if len(frame) < aes.BlockSize {
		return nil, &CryptoError{Reason: ErrFrameTooShort}
	}

	ciphertext := frame[aes.BlockSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, &CryptoError{Reason: ErrInvalidBlockSize}
	}

	iv := FixedIV
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(newBlock(password), iv[:]).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, &CryptoError{Reason: err}
	}

	return unpadded, nil
}

func newBlock(password string) cipher.Block {
	key := DeriveKey(password)
	// aes.NewCipher only fails on key sizes other than 16, 24 or 32.
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	return block
}
