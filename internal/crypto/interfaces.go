package crypto

// KeychainService owns every cryptographic transform of the vault:
// key derivation, per-field encryption, and account-password hashing.
// It knows nothing about the network, the database, or users.
//
// Key flow:
//
//	salt      = GenerateSalt()                 (stored openly)
//	key       = DeriveKey(masterPassword, salt)
//	blob      = EncryptField(plaintext, key)   (stored on the server)
//	plaintext = DecryptField(blob, key)
//
// The derived key lives only in the client-side context for the duration
// of a session; it is never persisted and never transmitted.
type KeychainService interface {
	// DeriveKey stretches a low-entropy secret and a salt into a 256-bit
	// symmetric key. Deterministic: the same (secret, salt) pair always
	// yields the same key. Returns ErrEmptyDerivationInput when either
	// input is empty.
	DeriveKey(secret, salt string) ([]byte, error)

	// GenerateSalt returns a fresh random 128-bit salt, hex-encoded.
	// The salt is not a secret; it only makes equal passwords derive
	// different keys.
	GenerateSalt() (string, error)

	// GenerateEncryptionKey returns a fresh random 256-bit key,
	// hex-encoded, for ephemeral per-session use when no user-derived
	// key is configured.
	GenerateEncryptionKey() (string, error)

	// EncryptField encrypts a single text field with the given key and
	// returns a self-contained blob: base64(nonce || ciphertext).
	// A random nonce is drawn per call, so encrypting the same plaintext
	// twice produces different blobs.
	EncryptField(plaintext string, key []byte) (string, error)

	// DecryptField reverses EncryptField. Returns ErrMalformedBlob for
	// structurally invalid input and ErrDecryptionFailed when the
	// authentication tag does not verify (wrong key or tampered blob).
	DecryptField(blob string, key []byte) (string, error)

	// ValidateBlob checks that a value is structurally a ciphertext blob
	// without attempting decryption. Used at the storage boundary to
	// refuse persisting plaintext where ciphertext is required.
	ValidateBlob(blob string) error

	// HashPassword produces a one-way bcrypt digest of an account
	// password for storage-at-rest verification. Internally salted;
	// two calls on the same input yield different digests.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches digest.
	// The comparison is constant-time (delegated to bcrypt).
	VerifyPassword(password, digest string) bool
}
