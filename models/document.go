package models

import "time"

// Document represents a single text document owned by exactly one user.
// All reads, writes, and deletes at the storage layer are scoped by UserID,
// so a document is never visible outside its owner's account.
type Document struct {
	// DocumentID is the internal unique identifier of the document.
	// Server-assigned on creation.
	DocumentID int64 `json:"id"`

	// Title is the user-supplied document title. Required, non-empty.
	Title string `json:"title"`

	// Content is the document body. Required.
	Content string `json:"content"`

	// UserID references the owning user by identifier.
	// It is a non-owning reference: the document store never dereferences it.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the document was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the document.
	// Document listings are ordered by this field, most recent first.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
