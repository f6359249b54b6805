package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/svortega/authms/internal/common"
	"github.com/svortega/authms/internal/server/models"
)

// Claims carries the identity attributes embedded in a token plus the
// registered temporal claims added at signing time.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenCodec signs identity claims into bearer tokens and verifies them
// back. The secret and ttl are process-wide configuration, set once at
// startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue signs the identity into an HS256 JWT valid for the configured ttl.
// The token is integrity-protected, not encrypted: it must never carry a
// password hash.
func (c *TokenCodec) Issue(id models.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			// jti keeps two tokens over the same claims distinct even when
			// issued within the same second.
			ID: uuid.NewString(),
		},
		Email: id.Email,
		Name:  id.Name,
	})

	return token.SignedString(c.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded identity with the temporal claims stripped.
//
// Every failure — bad signature, malformed structure, wrong algorithm,
// expired — is reported as common.ErrInvalidToken so callers cannot tell
// a tampered token from an expired one.
func (c *TokenCodec) Verify(tokenString string) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, common.ErrInvalidToken
	}

	return models.Identity{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
