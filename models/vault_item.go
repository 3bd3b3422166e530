// SPDX-License-Identifier: Apache-2.0

package models

import (
	"time"

	"github.com/google/uuid"
)

// VaultItem is a stored credential record owned by exactly one user.
//
// Username, Password and Notes hold ciphertext blobs produced by the
// client-side field cipher; the server never sees their plaintext and
// never receives the key needed to decrypt them. Title and URL are
// stored as-is so the list view can render without decryption.
type VaultItem struct {
	// ID is the unique identifier of the record.
	ID uuid.UUID `json:"id"`

	// UserID binds the item to its owner. Every read and mutation at the
	// persistence layer filters by it; an item is never visible to any
	// other user. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Title is a display name for the record (e.g. "GitHub").
	Title string `json:"title"`

	// Username is a ciphertext blob of the stored account name.
	Username string `json:"username"`

	// Password is a ciphertext blob of the stored secret.
	Password string `json:"password"`

	// URL is an optional plaintext link to the credential's site.
	URL string `json:"url,omitempty"`

	// Notes is an optional ciphertext blob of free-form notes.
	// Empty when the record has no notes.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last record modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultItem model.
func (v VaultItem) TableName() string {
	return "vault_items"
}
