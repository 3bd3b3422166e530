package service

import (
	"context"

	"github.com/alebedev/passvault/models"
	"github.com/google/uuid"
)

// AuthService covers the account lifecycle: registration, credential
// verification, and JWT session token issuance and parsing.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService manages encrypted vault items on behalf of an authenticated
// user. Sensitive fields (username, password, notes) arrive already
// encrypted; the service verifies their shape and never decrypts them.
type VaultService interface {
	ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error)
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error
}
