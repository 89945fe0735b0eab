// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing message strings. The top-level labels are part of the API
// contract; clients may match on them. Detail strings narrow a 401 down for
// debugging and must not be branched on.
const (
	// msgPleaseAuthenticate is the top-level label of every auth-guard
	// rejection.
	msgPleaseAuthenticate = "Please authenticate"

	// detailNoToken is sent when the request carries no usable bearer token.
	detailNoToken = "No token provided"

	// detailTokenExpired is sent when the token was once valid but is past
	// its expiry.
	detailTokenExpired = "Token expired"

	// detailInvalidToken is sent for every other token defect (bad
	// signature, wrong issuer, malformed string).
	detailInvalidToken = "Invalid token format"

	// detailUserNotFound is sent when the token verifies but the account it
	// was issued for no longer exists.
	detailUserNotFound = "User not found"

	msgInvalidCredentials   = "Invalid credentials"
	msgAllFieldsRequired    = "All fields are required"
	msgEmailAlreadyInUse    = "Email already in use"
	msgTitleContentRequired = "Title and content are required"
	msgDocumentNotFound     = "Document not found"
	msgInvalidJSON          = "Invalid JSON was passed"

	msgLoggedOut       = "Logged out"
	msgDocumentDeleted = "Document deleted"
)
