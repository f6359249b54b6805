package users

import (
	"context"

	"github.com/svortega/authms/internal/server/models"
)

// Repository is the persistent store of user identities, keyed by email.
//
// Create must enforce email uniqueness and return common.ErrConflict when a
// record with the same email already exists; this is the authoritative guard
// against concurrent registrations. GetByEmail returns common.ErrNotFound
// when no record matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
