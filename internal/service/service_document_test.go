package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDocumentService(ctrl *gomock.Controller) (DocumentService, *mock.MockDocumentRepository) {
	mockRepo := mock.NewMockDocumentRepository(ctrl)
	svc := NewDocumentService(mockRepo, logger.Nop())
	return svc, mockRepo
}

func TestDocumentService_CreateDocument_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	input := models.Document{Title: "Groceries", Content: "milk, eggs", UserID: 42}

	mockRepo.EXPECT().SaveDocument(ctx, input).DoAndReturn(
		func(_ context.Context, document models.Document) (models.Document, error) {
			document.DocumentID = 1
			return document, nil
		})

	saved, err := svc.CreateDocument(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.DocumentID)
	assert.Equal(t, int64(42), saved.UserID)
}

func TestDocumentService_CreateDocument_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDocumentService(ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		document models.Document
	}{
		{name: "empty title", document: models.Document{Content: "c", UserID: 1}},
		{name: "empty content", document: models.Document{Title: "t", UserID: 1}},
		{name: "no owner", document: models.Document{Title: "t", Content: "c"}},
		{name: "all empty", document: models.Document{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.CreateDocument(ctx, test.document)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestDocumentService_CreateDocument_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().SaveDocument(ctx, gomock.Any()).
		Return(models.Document{}, errors.New("connection refused"))

	_, err := svc.CreateDocument(ctx, models.Document{Title: "t", Content: "c", UserID: 1})
	require.Error(t, err)
}

func TestDocumentService_ListDocuments_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	stored := []models.Document{
		{DocumentID: 2, Title: "Second", UserID: 42},
		{DocumentID: 1, Title: "First", UserID: 42},
	}

	mockRepo.EXPECT().GetAllDocuments(ctx, int64(42)).Return(stored, nil)

	documents, err := svc.ListDocuments(ctx, 42)
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, int64(2), documents[0].DocumentID)
}

func TestDocumentService_ListDocuments_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetAllDocuments(ctx, int64(7)).Return([]models.Document{}, nil)

	documents, err := svc.ListDocuments(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestDocumentService_DeleteDocument_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteDocument(ctx, int64(42), int64(9)).Return(nil)

	require.NoError(t, svc.DeleteDocument(ctx, 42, 9))
}

func TestDocumentService_DeleteDocument_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDocumentService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteDocument(ctx, int64(42), int64(404)).
		Return(store.ErrDocumentNotFound)

	err := svc.DeleteDocument(ctx, 42, 404)
	require.ErrorIs(t, err, store.ErrDocumentNotFound)
}
