package accounts

import (
	"context"
	"time"

	"github.com/permadeath/launcher/internal/launcher/models"
)

type Repository interface {
	// CreateInitial inserts the account_status row for a newly registered
	// user, with last_connection set to now. Runs inside the invite
	// transaction.
	CreateInitial(ctx context.Context, userID int64, now time.Time) error

	// RecordConnection stamps last_connection for the user and returns the
	// number of rows touched. Zero rows is not an error.
	RecordConnection(ctx context.Context, userID int64) (int64, error)

	// LoadProfile joins users and account_status for the given username.
	// Returns common.ErrNotFound when no such user exists. A NULL
	// last_connection renders as "Never".
	LoadProfile(ctx context.Context, username string) (*models.UserData, error)
}
