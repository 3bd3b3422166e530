package service

import (
	"github.com/alebedev/passvault/internal/config"
	"github.com/alebedev/passvault/internal/crypto"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, keychain crypto.KeychainService, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, keychain, logger),
		VaultService: NewVaultService(storages.VaultRepository, keychain, logger),
	}
}
