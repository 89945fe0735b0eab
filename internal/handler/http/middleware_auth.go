package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the account the
// token was issued for, and — on success — stores the full authenticated
// [models.User] under [utils.UserCtxKey] and the raw token string under
// [utils.TokenCtxKey] before delegating to the next handler.
//
// Every rejection answers HTTP 401 with the uniform envelope
// {"error": "Please authenticate", "detail": <variant>} where the detail
// names the first check that failed:
//   - "No token provided"    — header absent or not a usable bearer value.
//   - "Token expired"        — token past its expiry.
//   - "Invalid token format" — bad signature, wrong issuer, malformed string.
//   - "User not found"       — token verifies but the account is gone.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Error().Msg("empty `Authorization` header")
			writeAuthError(w, detailNoToken)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("unusable `Authorization` header")
			writeAuthError(w, detailNoToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				writeAuthError(w, detailTokenExpired)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				writeAuthError(w, detailInvalidToken)
				return
			}
		}

		// A verified signature is not enough: the subject must still exist.
		user, err := h.services.AuthService.ResolveUser(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Int64("id", token.GetUserID()).Msg("token subject no longer exists")
				writeAuthError(w, detailUserNotFound)
				return
			default:
				log.Err(err).Msg("error occurred during resolving token subject")
				writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user and the raw token in the context so
		// that downstream handlers can retrieve them without re-parsing the
		// Authorization header.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
