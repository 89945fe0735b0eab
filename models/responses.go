package models

// AuthResponse is returned by the register and login endpoints.
// It carries the created/authenticated user together with a freshly
// issued bearer token the client must present on protected routes.
type AuthResponse struct {
	// User is the account record as stored, minus credential fields
	// (the password hash is excluded at the serialization level).
	User User `json:"user"`

	// Token is the compact JWS string to be sent back in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`
}

// MessageResponse is a generic acknowledgement envelope used by
// endpoints that change no client-visible state (logout, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope returned by every
// failure path of the HTTP API.
type ErrorResponse struct {
	// Error is the stable, client-facing top-level label
	// (e.g. "Please authenticate", "Invalid credentials").
	Error string `json:"error"`

	// Detail optionally narrows the failure down for debugging
	// (e.g. "Token expired" vs "Invalid token format"). Clients must
	// not branch on it.
	Detail string `json:"detail,omitempty"`
}
