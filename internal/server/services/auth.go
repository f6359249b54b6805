// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, credential verification, and
// issuing/refreshing signed identity tokens.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/svortega/authms/internal/common"
	"github.com/svortega/authms/internal/server/auth"
	"github.com/svortega/authms/internal/server/models"
	"github.com/svortega/authms/internal/server/repositories/users"
)

// AuthResult is the uniform success shape of Register, Login and Refresh:
// the public identity plus a bearer token over it. It never carries the
// password hash.
type AuthResult struct {
	User  models.Identity
	Token string
}

// AuthService provides the authentication operations:
//   - Register: create an identity and mint its first token
//   - Login: verify credentials and mint a fresh token
//   - Refresh: trade a valid token for one with a new expiry window
//
// Each call is a single transaction against the user repository; there is
// no shared mutable state between concurrent calls.
type AuthService struct {
	users  users.Repository
	hasher auth.PasswordHasher
	codec  *auth.TokenCodec
}

func NewAuthService(repo users.Repository, hasher auth.PasswordHasher, codec *auth.TokenCodec) *AuthService {
	return &AuthService{users: repo, hasher: hasher, codec: codec}
}

// Register creates a new identity. The email pre-check is an early exit only;
// the repository's unique constraint is the authoritative guard, so a
// concurrent duplicate surfaces as common.ErrConflict from Create and is
// reported as common.ErrDuplicateIdentity as well. Nothing is persisted on
// any failure path.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateIdentity
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.result(created.Identity())
}

// Login verifies the credentials for email. A missing identity is reported
// distinctly from a wrong password (common.ErrIdentityNotFound vs
// common.ErrInvalidCredentials), matching the upstream contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.result(user.Identity())
}

// Refresh verifies the presented token and re-issues one carrying the same
// identity claims with a fresh issued-at/expires-at window. Any invalid,
// tampered or expired token fails with common.ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, token string) (*AuthResult, error) {
	identity, err := s.codec.Verify(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	return s.result(identity)
}

func (s *AuthService) result(id models.Identity) (*AuthResult, error) {
	token, err := s.codec.Issue(id)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &AuthResult{User: id, Token: token}, nil
}
