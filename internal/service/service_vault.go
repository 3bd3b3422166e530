// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/alebedev/passvault/internal/crypto"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/store"
	"github.com/alebedev/passvault/models"
	"github.com/google/uuid"
)

// vaultService is the concrete implementation of VaultService.
//
// Username, password, and notes fields are opaque ciphertext blobs produced
// client-side. The service only checks that they have the shape of a blob
// before persisting, so plaintext can never be stored where ciphertext is
// expected. Title and URL stay in the clear for listing.
type vaultService struct {
	vaultRepository store.VaultRepository
	keychain        crypto.KeychainService

	logger *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, keychain crypto.KeychainService, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		keychain:        keychain,
		logger:          logger,
	}
}

// ListItems returns every vault item owned by userID, newest first.
func (v *vaultService) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	return v.vaultRepository.ListItems(ctx, userID)
}

// CreateItem validates and persists a new vault item.
func (v *vaultService) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := v.validateItem(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	return v.vaultRepository.CreateItem(ctx, item)
}

// UpdateItem validates and overwrites an existing vault item owned by the
// caller. Updating a missing or foreign item yields store.ErrVaultItemNotFound.
func (v *vaultService) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := v.validateItem(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	return v.vaultRepository.UpdateItem(ctx, item)
}

// DeleteItem removes an item owned by userID.
func (v *vaultService) DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error {
	return v.vaultRepository.DeleteItem(ctx, userID, id)
}

// validateItem enforces the invariants every stored item must satisfy:
// title, username, and password are required, and every sensitive field
// must structurally be a ciphertext blob.
func (v *vaultService) validateItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	if item.Title == "" || item.Username == "" || item.Password == "" {
		log.Error().Str("title", item.Title).Msg("vault item is missing required fields")
		return ErrInvalidDataProvided
	}

	for _, blob := range []string{item.Username, item.Password} {
		if err := v.keychain.ValidateBlob(blob); err != nil {
			log.Error().Err(err).Msg("vault item field is not an encrypted blob")
			return ErrInvalidEncryptedBlob
		}
	}
	if item.Notes != "" {
		if err := v.keychain.ValidateBlob(item.Notes); err != nil {
			log.Error().Err(err).Msg("vault item notes are not an encrypted blob")
			return ErrInvalidEncryptedBlob
		}
	}

	return nil
}
