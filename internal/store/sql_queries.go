// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password, theme)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password, theme, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, password, theme, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password, theme, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET name = $1, password = $2, theme = $3, updated_at = NOW()
    WHERE user_id = $4
    RETURNING user_id, name, email, password, theme, created_at, updated_at;`
)

// documentColumns lists every persisted column of the "documents" table in
// scan order. Shared by all document query builders so that SELECT lists and
// RETURNING clauses never drift apart from the row-scanning code.
var documentColumns = []string{
	"document_id",
	"title",
	"content",
	"user_id",
	"created_at",
	"updated_at",
}

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertDocumentQuery builds the INSERT for a new document. The
// RETURNING clause hands back the full canonical row so the caller receives
// server-assigned fields without a second round trip.
func buildInsertDocumentQuery(document models.Document) (string, []any, error) {
	query, args, err := psql.
		Insert(document.TableName()).
		Columns("title", "content", "user_id").
		Values(document.Title, document.Content, document.UserID).
		Suffix("RETURNING document_id, title, content, user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}

// buildListDocumentsQuery builds the owner-scoped listing query, ordered by
// most-recently-updated first.
func buildListDocumentsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}

// buildDeleteDocumentQuery builds the owner-scoped hard delete. Both the
// document id and the owner id participate in the WHERE clause, so a foreign
// document matches zero rows exactly like a missing one.
func buildDeleteDocumentQuery(userID, documentID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Document{}.TableName()).
		Where(sq.Eq{"document_id": documentID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
