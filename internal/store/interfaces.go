package store

import (
	"context"

	"github.com/alebedev/passvault/models"
	"github.com/google/uuid"
)

// UserRepository persists and retrieves user accounts. Implementations
// receive already-hashed credential material; plaintext passwords never
// reach this boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository persists and retrieves vault items. Every method scopes
// its query by the owner's user ID; an item belonging to another user
// behaves exactly like a missing one.
type VaultRepository interface {
	ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error)
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error
}
