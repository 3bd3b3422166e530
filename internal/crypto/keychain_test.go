package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeychainService()

	k1, err := svc.DeriveKey("correct horse battery staple", "a1b2c3d4")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey("correct horse battery staple", "a1b2c3d4")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same secret+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeychainService()

	k1, err := svc.DeriveKey("same password", "salt-one")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey("same password", "salt-two")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_EmptyInputs(t *testing.T) {
	svc := NewKeychainService()

	tests := []struct {
		name   string
		secret string
		salt   string
	}{
		{"empty secret", "", "salt"},
		{"empty salt", "secret", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DeriveKey(tt.secret, tt.salt)
			if !errors.Is(err, ErrEmptyDerivationInput) {
				t.Fatalf("expected ErrEmptyDerivationInput, got %v", err)
			}
		})
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeychainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	// 16 bytes hex-encoded
	if len(s1) != 32 {
		t.Fatalf("salt length = %d, want 32 hex chars", len(s1))
	}
	if s1 == s2 {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateEncryptionKey_DecodableAndRandom(t *testing.T) {
	svc := NewKeychainService()

	k1, err := svc.GenerateEncryptionKey()
	if err != nil {
		t.Fatalf("GenerateEncryptionKey error: %v", err)
	}
	k2, err := svc.GenerateEncryptionKey()
	if err != nil {
		t.Fatalf("GenerateEncryptionKey error: %v", err)
	}

	if k1 == k2 {
		t.Fatalf("expected keys to differ, but they are equal")
	}

	raw, err := DecodeKey(k1)
	if err != nil {
		t.Fatalf("DecodeKey error: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("decoded key length = %d, want 32", len(raw))
	}
}

func TestEncryptField_RoundTrip(t *testing.T) {
	svc := NewKeychainService()

	key, err := svc.DeriveKey("master password", "0123456789abcdef")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	plaintext := "s3cr3t-value"
	blob, err := svc.EncryptField(plaintext, key)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	if blob == plaintext {
		t.Fatalf("blob must not equal plaintext")
	}

	got, err := svc.DecryptField(blob, key)
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if got != plaintext {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestEncryptField_NonDeterministic(t *testing.T) {
	svc := NewKeychainService()

	key := bytes.Repeat([]byte{0x42}, 32)

	b1, err := svc.EncryptField("same plaintext", key)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	b2, err := svc.EncryptField("same plaintext", key)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected different blobs for repeated encryption of the same plaintext")
	}
}

func TestDecryptField_WrongKey(t *testing.T) {
	svc := NewKeychainService()

	rightKey := bytes.Repeat([]byte{0x01}, 32)
	wrongKey := bytes.Repeat([]byte{0x02}, 32)

	blob, err := svc.EncryptField("payload", rightKey)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	_, err = svc.DecryptField(blob, wrongKey)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecryptField_MalformedBlob(t *testing.T) {
	svc := NewKeychainService()
	key := bytes.Repeat([]byte{0x01}, 32)

	tests := []struct {
		name string
		blob string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"too short", "YWJj"}, // base64("abc"), shorter than a nonce
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptField(tt.blob, key)
			if !errors.Is(err, ErrMalformedBlob) {
				t.Fatalf("expected ErrMalformedBlob, got %v", err)
			}
		})
	}
}

func TestDecryptField_InvalidKeySize(t *testing.T) {
	svc := NewKeychainService()

	blob, err := svc.EncryptField("payload", bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	_, err = svc.DecryptField(blob, []byte("short key"))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("expected ErrInvalidKeySize, got %v", err)
	}
}

func TestValidateBlob(t *testing.T) {
	svc := NewKeychainService()
	key := bytes.Repeat([]byte{0x07}, 32)

	blob, err := svc.EncryptField("anything", key)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	if err := svc.ValidateBlob(blob); err != nil {
		t.Fatalf("ValidateBlob rejected a real blob: %v", err)
	}

	if err := svc.ValidateBlob("plaintext password"); !errors.Is(err, ErrMalformedBlob) {
		t.Fatalf("expected ErrMalformedBlob for plaintext, got %v", err)
	}
	if err := svc.ValidateBlob("YWJj"); !errors.Is(err, ErrMalformedBlob) {
		t.Fatalf("expected ErrMalformedBlob for short blob, got %v", err)
	}
}

func TestHashPassword_VerifyAndSaltedness(t *testing.T) {
	svc := NewKeychainService()

	d1, err := svc.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := svc.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("expected different digests for two hashings of the same password")
	}
	if strings.Contains(d1, "secret1") {
		t.Fatalf("digest must not embed the plaintext password")
	}

	if !svc.VerifyPassword("secret1", d1) {
		t.Fatalf("expected correct password to verify")
	}
	if svc.VerifyPassword("secret2", d1) {
		t.Fatalf("expected wrong password to fail verification")
	}
}
