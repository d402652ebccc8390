// Package sessions provides the PostgreSQL repository for session rows.
// Expired sessions are filtered at read time; there is no background reaper.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/permadeath/launcher/internal/common"
	"github.com/permadeath/launcher/internal/dbx"
	"github.com/permadeath/launcher/internal/launcher/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO sessions (user_id, session_token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token, expiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindActive(ctx context.Context, token string) (*models.SessionInfo, error) {
	query := `
		SELECT s.user_id, u.username
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_token = $1 AND s.expires_at > now()
	`
	info := &models.SessionInfo{}
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&info.UserID, &info.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return info, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	query := `
		DELETE FROM sessions
		WHERE session_token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
