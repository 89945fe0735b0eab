// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestServerClient(t *testing.T, handler http.Handler) ServerClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewServerClient(config.ClientConfig{
		ServerAddress:  srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return api
}

func writeJSONResponse(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://notes.example.com", want: "https://notes.example.com"},
		{name: "bare host gets scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "surrounding spaces", raw: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "only spaces", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestServerClient_RegisterStoresTokenForFollowingCalls(t *testing.T) {
	var authHeaderOnMe string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var request models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Equal(t, "Ivan", request.Name)

		writeJSONResponse(t, w, http.StatusCreated, models.AuthResponse{
			User:  models.User{UserID: 7, Name: request.Name, Email: request.Email},
			Token: "issued-token",
		})
	})
	mux.HandleFunc("GET /api/me", func(w http.ResponseWriter, r *http.Request) {
		authHeaderOnMe = r.Header.Get("Authorization")
		writeJSONResponse(t, w, http.StatusOK, models.User{UserID: 7, Name: "Ivan"})
	})

	api := newTestServerClient(t, mux)

	response, err := api.Register(context.Background(), models.RegisterRequest{Name: "Ivan", Email: "ivan@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "issued-token", response.Token)
	require.Equal(t, int64(7), response.User.UserID)

	_, err = api.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer issued-token", authHeaderOnMe)
}

func TestServerClient_LoginFailureSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
	})

	api := newTestServerClient(t, mux)

	_, err := api.Login(context.Background(), models.LoginRequest{Email: "ivan@example.com", Password: "wrong"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnauthorized, "a failed login is not a stale token")
	require.Contains(t, err.Error(), "Invalid credentials")
}

func TestServerClient_StaleTokenIsUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please authenticate", Detail: "Token expired"})
	})

	api := newTestServerClient(t, mux)
	api.SetToken("expired-token")

	_, err := api.ListDocuments(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerClient_ErrorEnvelopeMessageSurfaced(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/files", func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Title and content are required"})
	})

	api := newTestServerClient(t, mux)
	api.SetToken("some-token")

	_, err := api.CreateDocument(context.Background(), models.CreateDocumentRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Title and content are required")
	require.Contains(t, err.Error(), "400")
}

func TestServerClient_DeleteDocumentTargetsDocumentPath(t *testing.T) {
	var gotPath string

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSONResponse(t, w, http.StatusOK, models.MessageResponse{Message: "Document deleted"})
	})

	api := newTestServerClient(t, mux)
	api.SetToken("some-token")

	require.NoError(t, api.DeleteDocument(context.Background(), 42))
	require.Equal(t, "/api/files/42", gotPath)
}

func TestServerClient_ListDocuments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(t, w, http.StatusOK, []models.Document{
			{DocumentID: 2, Title: "newer"},
			{DocumentID: 1, Title: "older"},
		})
	})

	api := newTestServerClient(t, mux)
	api.SetToken("some-token")

	documents, err := api.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, documents, 2)
	require.Equal(t, "newer", documents[0].Title)
}

func TestNewServerClient_RejectsUnparsableAddress(t *testing.T) {
	_, err := NewServerClient(config.ClientConfig{ServerAddress: "   "}, logger.Nop())
	require.Error(t, err)
}
