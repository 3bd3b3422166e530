package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound
	// register/login request. It is never persisted and never echoed back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored instead of the password.
	// The digest embeds its own salt and cost factor, so two hashings of
	// the same password never produce the same value.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
