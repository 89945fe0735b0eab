// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

// ServerClient is the client-side contract of the note-keeper HTTP API.
type ServerClient interface {
	// SetToken stores the bearer token used on authenticated calls.
	SetToken(token string)

	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, request models.UpdateUserRequest) (models.User, error)
	CreateDocument(ctx context.Context, request models.CreateDocumentRequest) (models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	DeleteDocument(ctx context.Context, documentID int64) error
}

type httpServerClient struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewServerClient constructs a resty-backed [ServerClient] for the server
// base URL in cfg. Returns an error if the address cannot be parsed.
func NewServerClient(cfg config.ClientConfig, logger *logger.Logger) (ServerClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerClient{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// request prepares a resty request with the stored bearer token attached.
func (h *httpServerClient) request(ctx context.Context) *resty.Request {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.token != "" {
		r.SetHeader("Authorization", "Bearer "+h.token)
	}
	return r
}

// mapAPIError converts a non-2xx response into an error carrying the
// server's envelope message. A 401 on a call that carried the stored token
// means the token itself went stale.
func (h *httpServerClient) mapAPIError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized && h.token != "" {
		return ErrUnauthorized
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("server answered %d: %s", resp.StatusCode(), envelope.Error)
	}
	return fmt.Errorf("server answered %d", resp.StatusCode())
}

func (h *httpServerClient) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(response.Token)
	return response, nil
}

func (h *httpServerClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(response.Token)
	return response, nil
}

func (h *httpServerClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return h.mapAPIError(resp)
}

func (h *httpServerClient) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetResult(&user).
		Get("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerClient) UpdateMe(ctx context.Context, request models.UpdateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&user).
		Patch("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update me request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerClient) CreateDocument(ctx context.Context, request models.CreateDocumentRequest) (models.Document, error) {
	var document models.Document

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&document).
		Post("/api/files")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Document{}, err
	}

	return document, nil
}

func (h *httpServerClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var documents []models.Document

	resp, err := h.request(ctx).
		SetResult(&documents).
		Get("/api/files")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return nil, err
	}

	return documents, nil
}

func (h *httpServerClient) DeleteDocument(ctx context.Context, documentID int64) error {
	resp, err := h.request(ctx).
		Delete("/api/files/" + strconv.FormatInt(documentID, 10))
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}
	return h.mapAPIError(resp)
}
