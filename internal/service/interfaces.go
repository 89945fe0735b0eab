package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, token models.Token) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UpdateUserRequest) (models.User, error)
}

type DocumentService interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, userID int64) ([]models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID int64) error
}
