package crypto

import "errors"

// Sentinel errors returned by the keychain service. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyDerivationInput is returned when key derivation is invoked
	// with an empty secret or an empty salt. Deriving from default
	// material would silently produce a guessable key, so the call fails
	// loudly instead.
	ErrEmptyDerivationInput = errors.New("empty secret or salt passed to key derivation")

	// ErrInvalidKeySize is returned when a field-cipher operation receives
	// a key that is not 32 bytes (AES-256).
	ErrInvalidKeySize = errors.New("field cipher requires a 32-byte key")

	// ErrMalformedBlob is returned when a ciphertext blob is structurally
	// invalid: not valid base64, or shorter than the GCM nonce.
	ErrMalformedBlob = errors.New("malformed ciphertext blob")

	// ErrDecryptionFailed is returned when the authentication tag check
	// fails during decryption. This almost always means the wrong key was
	// used, or the blob was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")
)
