package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It executes all document CRUD operations against
// the "documents" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, document_id).
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDocument inserts a new document row owned by document.UserID.
//
// The generated database ID and auto-maintained timestamps are returned in
// the result via the INSERT … RETURNING clause.
func (p *documentRepository) SaveDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(document)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.SaveDocument").
			Int64("user_id", document.UserID).
			Msg("failed to build insert query")
		return models.Document{}, err
	}

	log.Debug().
		Int64("user_id", document.UserID).
		Str("title", document.Title).
		Msg("saving document")

	var saved models.Document
	scanErr := p.DB.QueryRowContext(ctx, query, args...).Scan(
		&saved.DocumentID,
		&saved.Title,
		&saved.Content,
		&saved.UserID,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "documentRepository.SaveDocument").
			Int64("user_id", document.UserID).
			Msg("failed to save document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return saved, nil
}

// GetAllDocuments retrieves every document owned by the given user, ordered
// by most-recently-updated first.
//
// Returns an empty slice when no records are found.
func (p *documentRepository) GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetAllDocuments").
			Int64("user_id", userID).
			Msg("failed to build list query")
		return nil, err
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "documentRepository.GetAllDocuments").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 50)

	for rows.Next() {
		var document models.Document

		scanErr := rows.Scan(
			&document.DocumentID,
			&document.Title,
			&document.Content,
			&document.UserID,
			&document.CreatedAt,
			&document.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.GetAllDocuments").
				Int64("user_id", userID).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		documents = append(documents, document)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.GetAllDocuments").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return documents, nil
}

// DeleteDocument hard-deletes the document matching both documentID and
// owner userID.
//
// The WHERE clause carries both identifiers, so a zero-row result covers
// two indistinguishable cases: the document never existed, or it belongs to
// a different user. Both surface as [ErrDocumentNotFound] to prevent
// existence leakage across accounts.
func (p *documentRepository) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(userID, documentID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to build delete query")
		return err
	}

	result, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		log.Err(affErr).
			Str("func", "documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("document not found or owned by another user")
		return ErrDocumentNotFound
	}

	log.Info().
		Str("func", "documentRepository.DeleteDocument").
		Int64("user_id", userID).
		Int64("document_id", documentID).
		Msg("document deleted")

	return nil
}
