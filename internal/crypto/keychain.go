// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// keychainService is the private implementation of [KeychainService].
type keychainService struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching call sites.
	kdfIterations int
	kdfKeyLen     int
	saltLen       int

	// bcryptCost is the work factor for account-password hashing.
	bcryptCost int
}

// NewKeychainService constructs a [KeychainService] with the parameters
// the vault format is defined by:
//   - key derivation: PBKDF2-SHA256, 10,000 iterations, 32-byte output
//   - salt length:    16 bytes (128 bits)
//   - password hash:  bcrypt, cost 12
func NewKeychainService() KeychainService {
	return &keychainService{
		kdfIterations: 10_000,
		kdfKeyLen:     32, // 256 bits
		saltLen:       16, // 128 bits
		bcryptCost:    12,
	}
}

// DeriveKey implements [KeychainService]. It derives a 256-bit symmetric
// key from secret and salt using PBKDF2-SHA256 with the iteration count
// stored in the receiver. The iterated derivation deliberately slows
// brute-force guessing of low-entropy secrets.
func (k *keychainService) DeriveKey(secret, salt string) ([]byte, error) {
	if secret == "" || salt == "" {
		return nil, ErrEmptyDerivationInput
	}

	return pbkdf2.Key([]byte(secret), []byte(salt), k.kdfIterations, k.kdfKeyLen, sha256.New), nil
}

// GenerateSalt implements [KeychainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them hex-encoded. Returns an error if the
// random read fails.
func (k *keychainService) GenerateSalt() (string, error) {
	salt := make([]byte, k.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// GenerateEncryptionKey implements [KeychainService]. It reads 32 random
// bytes from the OS CSPRNG and returns them hex-encoded, for sessions that
// do not configure a password-derived key. Returns an error if the random
// read fails.
func (k *keychainService) GenerateEncryptionKey() (string, error) {
	key := make([]byte, k.kdfKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// EncryptField implements [KeychainService]. It encrypts plaintext with
// key using AES-256-GCM. A random 12-byte nonce is prepended to the
// ciphertext so the decryption side can locate it without side-channel
// metadata: blob = base64(nonce || ciphertext). Returns an error if the
// key size is wrong or the random nonce read fails.
func (k *keychainService) EncryptField(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// DecryptField implements [KeychainService]. It unwraps the blob produced
// by [keychainService.EncryptField] using key and AES-256-GCM.
//
// Returns:
//   - ErrMalformedBlob if the blob is not base64 or is shorter than the
//     GCM nonce;
//   - ErrDecryptionFailed if the authentication tag does not verify,
//     which almost always means the wrong key was supplied.
func (k *keychainService) DecryptField(blob string, key []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", ErrMalformedBlob
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// ValidateBlob implements [KeychainService]. It checks structure only:
// valid base64 and at least nonce-sized. It cannot verify the
// authentication tag without the key, so a well-formed blob may still
// fail decryption later.
func (k *keychainService) ValidateBlob(blob string) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}

	// 12-byte GCM nonce plus at least the 16-byte tag.
	if len(raw) < 12+16 {
		return ErrMalformedBlob
	}

	return nil
}

// HashPassword implements [KeychainService]. bcrypt salts internally, so
// hashing the same password twice yields different digests.
func (k *keychainService) HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), k.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword implements [KeychainService]. The only verification path
// is re-hash-and-compare; bcrypt performs the comparison in constant time.
func (k *keychainService) VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// newGCM builds an AES-256-GCM AEAD from a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// DecodeKey converts the printable hex form produced by
// [KeychainService.GenerateEncryptionKey] back into raw key bytes.
func DecodeKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}
