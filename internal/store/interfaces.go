package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
// All methods operate on the "users" table and return domain sentinel
// errors (see errors.go) for well-known failure conditions.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyInUse when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account whose Email matches exactly.
	// Returns ErrNoUserWasFound when there is no such account.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account by its identifier.
	// Returns ErrNoUserWasFound when there is no such account.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser persists the mutable profile fields (name, theme,
	// password hash) of an existing account and returns the updated record.
	// Returns ErrNoUserWasFound when the account does not exist.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// DocumentRepository is the persistence contract for owned documents.
// Every read and delete is scoped by owner: a document belonging to another
// user behaves exactly as if it did not exist.
type DocumentRepository interface {
	// SaveDocument persists a new document and returns it with
	// server-assigned fields (DocumentID, CreatedAt, UpdatedAt) populated.
	SaveDocument(ctx context.Context, document models.Document) (models.Document, error)

	// GetAllDocuments returns every document owned by userID, ordered by
	// most-recently-updated first. An empty slice is a valid result.
	GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error)

	// DeleteDocument removes the document matching both documentID and
	// owner userID. Returns ErrDocumentNotFound when no row matches —
	// deliberately the same error whether the id is wrong or the document
	// belongs to someone else.
	DeleteDocument(ctx context.Context, userID, documentID int64) error
}
