package models

// CipherResponse is the JSON body returned by the encrypt and decrypt API
// endpoints.
type CipherResponse struct {
	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Result holds the Base64 ciphertext (encrypt) or the plaintext preview
	// (decrypt). Empty on failure.
	Result string `json:"result,omitempty"`

	// Error is a user-facing message. Empty on success.
	Error string `json:"error,omitempty"`
}
