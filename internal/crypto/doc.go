// Package crypto implements the file transform behind go-file-cipher:
// AES-128 in CBC mode with PKCS#7 padding, framed as IV ‖ ciphertext and
// encoded with standard Base64.
//
// The key is the UTF-8 password right-padded with zero bytes (or truncated)
// to 16 bytes. There is no salt and no key stretching.
//
// Known weaknesses, kept for compatibility with artifacts produced by
// earlier releases:
//   - every message is encrypted under the same IV ([FixedIV]), so equal
//     plaintexts under equal passwords produce equal ciphertexts;
//   - Decrypt skips the 16 IV bytes stored in the frame and always uses
//     [FixedIV];
//   - there is no authentication tag. A wrong password is detected only
//     through invalid padding, which a wrong key still passes roughly once
//     in 256 attempts.
//
// Changing any of these requires a new artifact format.
package crypto
