package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

func NewServices(storages store.Storages, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, logger),
	}
}
