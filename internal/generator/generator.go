// SPDX-License-Identifier: Apache-2.0

// Package generator produces random passwords from a configurable
// character-class policy and scores password strength for UI feedback.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// Character-class alphabets the pool is built from.
const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers   = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// lookAlikes are characters that are easy to confuse with each other
	// when a password is read or typed from a screen.
	lookAlikes = "0O1lI"
)

// Length bounds accepted by [Generate].
const (
	MinLength = 8
	MaxLength = 64
)

// Sentinel errors returned by [Generate]. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEmptyCharset is returned when the policy selects no character
	// class, or the look-alike exclusion empties the pool. It is distinct
	// from other failures so a caller can prompt for policy correction.
	ErrEmptyCharset = errors.New("password policy yields an empty character set")

	// ErrInvalidLength is returned when the requested length is outside
	// [MinLength, MaxLength].
	ErrInvalidLength = errors.New("password length must be between 8 and 64")
)

// Policy is the set of character-class and length choices governing
// password synthesis. There are no implicit defaults: the caller supplies
// every field.
type Policy struct {
	Length            int  `json:"length"`
	IncludeUppercase  bool `json:"include_uppercase"`
	IncludeLowercase  bool `json:"include_lowercase"`
	IncludeNumbers    bool `json:"include_numbers"`
	IncludeSymbols    bool `json:"include_symbols"`
	ExcludeLookAlikes bool `json:"exclude_look_alikes"`
}

// Generate returns a random password of exactly policy.Length characters.
//
// The character pool is the union of the selected class alphabets; when
// ExcludeLookAlikes is set, the confusable set "0O1lI" is removed after
// the union. Each output character is drawn independently and uniformly
// from the pool using the OS CSPRNG.
//
// Returns ErrInvalidLength or ErrEmptyCharset for unusable policies; the
// generator never silently draws from an empty or default alphabet.
func Generate(policy Policy) (string, error) {
	if policy.Length < MinLength || policy.Length > MaxLength {
		return "", ErrInvalidLength
	}

	pool := buildPool(policy)
	if len(pool) == 0 {
		return "", ErrEmptyCharset
	}

	var b strings.Builder
	b.Grow(policy.Length)

	max := big.NewInt(int64(len(pool)))
	for i := 0; i < policy.Length; i++ {
		// rand.Int is uniform over [0, len(pool)), no modulo bias.
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(pool[n.Int64()])
	}

	return b.String(), nil
}

// buildPool assembles the character pool for the given policy.
func buildPool(policy Policy) []byte {
	var union strings.Builder

	if policy.IncludeLowercase {
		union.WriteString(lowercase)
	}
	if policy.IncludeUppercase {
		union.WriteString(uppercase)
	}
	if policy.IncludeNumbers {
		union.WriteString(numbers)
	}
	if policy.IncludeSymbols {
		union.WriteString(symbols)
	}

	pool := union.String()
	if policy.ExcludeLookAlikes {
		pool = strings.Map(func(r rune) rune {
			if strings.ContainsRune(lookAlikes, r) {
				return -1
			}
			return r
		}, pool)
	}

	return []byte(pool)
}
