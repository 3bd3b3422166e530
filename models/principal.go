package models

// Principal is the identity of an authenticated account as recovered from
// a verified session token. It carries only what the token itself proves;
// anything else must be loaded from the store by UserID.
type Principal struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
