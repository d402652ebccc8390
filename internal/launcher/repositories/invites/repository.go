package invites

import (
	"context"

	"github.com/permadeath/launcher/internal/launcher/models"
)

type Repository interface {
	// GetByCodeForUpdate reads the invite row with a row lock, serializing
	// concurrent redemption attempts on the same code. Must run inside a
	// transaction. Returns common.ErrNotFound when the code does not exist.
	GetByCodeForUpdate(ctx context.Context, code string) (*models.Invite, error)

	// Claim marks the invite claimed and links it to userID. The claimed
	// re-check happens in the statement itself: the returned count is zero
	// when another transaction claimed the code first.
	Claim(ctx context.Context, code string, userID int64) (int64, error)
}
