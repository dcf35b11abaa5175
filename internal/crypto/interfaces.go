package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_codec_mock.go -package=mock

// CipherCodec encrypts and decrypts whole in-memory buffers under a
// password.
//
// Implementations hold no mutable state and are safe for concurrent use.
type CipherCodec interface {
	// Encrypt pads plaintext, encrypts it with the key derived from password
	// and returns the Base64 text of the frame together with the raw frame
	// (IV ‖ ciphertext). It never fails.
	Encrypt(plaintext []byte, password string) (string, []byte)

	// Decrypt parses a Base64 frame produced by Encrypt and returns the
	// original plaintext. It returns a [*DecodeError] when the text is not
	// valid Base64 and a [*CryptoError] when the frame is too short, is not
	// block aligned or carries invalid padding.
	Decrypt(base64Text string, password string) ([]byte, error)
}
