package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureSeparator joins a value and its signature. Session ids are
// uuids, which never contain it.
const signatureSeparator = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// SignValue returns value followed by its HMAC-SHA256 signature, suitable
// for storing in a cookie.
//
//	signed := utils.SignValue(sessionID, key) // "<sessionID>.<hex hmac>"
func SignValue(value string, hashKey string) string {
	return value + signatureSeparator + HashString(value, hashKey)
}

// VerifySignedValue checks a string produced by SignValue and returns the
// original value. ok is false when the signature is missing or does not
// match hashKey.
func VerifySignedValue(signed string, hashKey string) (value string, ok bool) {
	i := strings.LastIndex(signed, signatureSeparator)
	if i <= 0 {
		return "", false
	}

	value, signature := signed[:i], signed[i+len(signatureSeparator):]

	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}

	return value, true
}
