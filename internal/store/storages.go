package store

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
// It is assembled once at startup and injected downward.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
	}
}
