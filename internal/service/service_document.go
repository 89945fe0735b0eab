package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// documentService is the concrete implementation of DocumentService.
// Every operation is scoped to the owning user: listing only ever returns
// the caller's documents and deletion of somebody else's document is
// indistinguishable from deleting a missing one.
type documentService struct {
	documentRepository store.DocumentRepository
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService backed by the given
// repository.
func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

// CreateDocument validates and persists a new document for its owner.
//
// Returns the persisted document (with server-assigned DocumentID and
// timestamps) or:
//   - ErrInvalidDataProvided when Title or Content is empty, or no owner
//     is set.
//   - A wrapped storage error if the repository call fails.
func (d *documentService) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if document.Title == "" || document.Content == "" || document.UserID == 0 {
		log.Error().Int64("user_id", document.UserID).Msg("invalid document data provided")
		return models.Document{}, ErrInvalidDataProvided
	}

	savedDocument, err := d.documentRepository.SaveDocument(ctx, document)
	if err != nil {
		log.Err(err).Int64("user_id", document.UserID).Msg("document creation ended with error")
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	return savedDocument, nil
}

// ListDocuments returns every document owned by userID, most recently
// updated first. An account with no documents gets an empty slice, not an
// error.
func (d *documentService) ListDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	documents, err := d.documentRepository.GetAllDocuments(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("document listing ended with error")
		return nil, fmt.Errorf("document listing ended with error: %w", err)
	}

	return documents, nil
}

// DeleteDocument removes the document identified by documentID, provided it
// belongs to userID. A document owned by another user produces the same
// wrapped store.ErrDocumentNotFound as a missing one.
func (d *documentService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	log := logger.FromContext(ctx)

	if err := d.documentRepository.DeleteDocument(ctx, userID, documentID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("document deletion ended with error")
		return fmt.Errorf("document deletion ended with error: %w", err)
	}

	return nil
}
