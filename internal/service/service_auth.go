// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates,
// and JWT token lifecycle using a UserRepository for persistence and a
// PasswordHasher for credential storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher hashes plaintext passwords before storage and verifies
	// login attempts against the stored hash.
	passwordHasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher, with token parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Name, Email and Password are non-empty, replaces the
// plaintext password with its hash, and delegates persistence to the
// UserRepository. The Password field of the argument must contain the
// plaintext supplied by the client; the persisted record carries the hash.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Name, Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. the email
//     is already taken — see store.ErrEmailAlreadyInUse).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashed, err := a.passwordHasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}
	user.Password = hashed

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and plaintext password.
//
// An unknown email and a wrong password both produce ErrInvalidCredentials,
// so a caller cannot distinguish which of the two failed.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the account does not exist or the password
//     does not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwordHasher.Verify(password, foundUser.Password) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim, and classifies the failure mode so transport code can
// answer with a precise detail message:
//   - ErrTokenIsExpired when the token was once valid but has expired.
//   - ErrTokenIsInvalid for every other failure (bad signature, wrong
//     issuer, malformed string, missing subject).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// ResolveUser loads the account the token was issued for.
//
// A valid signature alone is not enough to authenticate a request: the
// subject must still exist in storage. Returns the full user record or a
// wrapped storage error (store.ErrNoUserWasFound when the account behind
// the token has been removed).
func (a *authService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, token.GetUserID())
	if err != nil {
		log.Err(err).Int64("id", token.GetUserID()).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial profile update to an existing account.
//
// Only non-nil fields of update are applied. A supplied Password is hashed
// before persistence; when it is omitted the stored hash is carried over
// unchanged.
//
// Returns the updated user record or:
//   - ErrInvalidDataProvided when a supplied Name or Password is empty.
//   - A wrapped storage error when the account does not exist or the
//     repository call fails.
func (a *authService) UpdateUser(ctx context.Context, userID int64, update models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup for update failed")
		return models.User{}, fmt.Errorf("user lookup for update failed: %w", err)
	}

	if update.Name != nil {
		if *update.Name == "" {
			log.Error().Int64("id", userID).Msg("empty name in profile update")
			return models.User{}, ErrInvalidDataProvided
		}
		user.Name = *update.Name
	}
	if update.Theme != nil {
		user.Theme = *update.Theme
	}
	if update.Password != nil {
		if *update.Password == "" {
			log.Error().Int64("id", userID).Msg("empty password in profile update")
			return models.User{}, ErrInvalidDataProvided
		}
		hashed, err := a.passwordHasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		user.Password = hashed
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}
