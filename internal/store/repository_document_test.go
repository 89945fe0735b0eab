package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &documentRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func documentRows(documents ...models.Document) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"document_id", "title", "content", "user_id", "created_at", "updated_at"})
	for _, d := range documents {
		rows.AddRow(d.DocumentID, d.Title, d.Content, d.UserID, d.CreatedAt, d.UpdatedAt)
	}
	return rows
}

func TestSaveDocument_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	now := time.Now()
	input := models.Document{Title: "Groceries", Content: "milk, eggs", UserID: 42}
	stored := input
	stored.DocumentID = 1
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(input.Title, input.Content, input.UserID).
		WillReturnRows(documentRows(stored))

	saved, err := repo.SaveDocument(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.DocumentID != 1 {
		t.Errorf("expected DocumentID=1, got %d", saved.DocumentID)
	}
	if saved.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", saved.UserID)
	}
}

func TestSaveDocument_QueryError(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	_, err := repo.SaveDocument(context.Background(), models.Document{Title: "t", Content: "c", UserID: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllDocuments_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	now := time.Now()
	newer := models.Document{DocumentID: 2, Title: "Second", Content: "b", UserID: 42, CreatedAt: now, UpdatedAt: now}
	older := models.Document{DocumentID: 1, Title: "First", Content: "a", UserID: 42, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)}

	// repository relies on the database to order by updated_at DESC
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(42)).
		WillReturnRows(documentRows(newer, older))

	documents, err := repo.GetAllDocuments(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(documents))
	}
	if documents[0].DocumentID != 2 || documents[1].DocumentID != 1 {
		t.Errorf("expected most-recently-updated first, got %+v", documents)
	}
}

func TestGetAllDocuments_Empty(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(7)).
		WillReturnRows(documentRows())

	documents, err := repo.GetAllDocuments(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("expected empty result, got %d documents", len(documents))
	}
}

func TestGetAllDocuments_ScanError(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"document_id", "title", "content", "user_id", "created_at", "updated_at"}).
		AddRow("not-an-int", "t", "c", 42, time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	_, err := repo.GetAllDocuments(context.Background(), 42)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestDeleteDocument_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(9), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteDocument(context.Background(), 42, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDocument(context.Background(), 42, 404)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDeleteDocument_ForeignOwnerLooksLikeMissing(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	// document 9 exists but belongs to user 1; the owner-scoped WHERE
	// matches zero rows for user 2
	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(9), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDocument(context.Background(), 2, 9)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDeleteDocument_ExecError(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection lost"))

	err := repo.DeleteDocument(context.Background(), 42, 9)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
