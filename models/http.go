package models

// RegisterRequest is the JSON body accepted by POST /api/register.
// All three fields are required; the handler rejects the request with
// 400 Bad Request if any of them is empty.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/login.
// Both fields are required.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the JSON body accepted by PATCH /api/me.
// Only non-nil fields are applied (partial update support).
// A supplied Password is re-hashed before persistence; omitting it
// leaves the stored hash untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Theme    *bool   `json:"theme,omitempty"`
	Password *string `json:"password,omitempty"`
}

// CreateDocumentRequest is the JSON body accepted by POST /api/files.
// Both fields are required.
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
