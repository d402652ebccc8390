package sessions

import (
	"context"
	"time"

	"github.com/permadeath/launcher/internal/launcher/models"
)

type Repository interface {
	// Create inserts a session row.
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// FindActive resolves a token to its owner, filtering out expired rows
	// in the query itself. Returns common.ErrNotFound for unknown or
	// expired tokens.
	FindActive(ctx context.Context, token string) (*models.SessionInfo, error)

	// Delete removes a session row by token. Deleting a token that does
	// not exist is not an error.
	Delete(ctx context.Context, token string) error
}
