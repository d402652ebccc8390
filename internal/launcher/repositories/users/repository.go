package users

import (
	"context"

	"github.com/permadeath/launcher/internal/launcher/models"
)

type Repository interface {
	// GetByUsername returns the user row or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create inserts a user row and returns its generated id. Intended to
	// run inside the invite-redemption transaction.
	Create(ctx context.Context, username, passwordHash string) (int64, error)
}
