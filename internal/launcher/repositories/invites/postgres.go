// Package invites provides the PostgreSQL repository for invitation codes.
package invites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) GetByCodeForUpdate(ctx context.Context, code string) (*models.Invite, error) {
	query := `
		SELECT id, code, claimed, user_id
		FROM invites
		WHERE code = $1
		FOR UPDATE
	`
	invite := &models.Invite{}
	var userID sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&invite.ID, &invite.Code, &invite.Claimed, &userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if userID.Valid {
		invite.UserID = &userID.Int64
	}
	return invite, nil
}

func (r *PostgresRepository) Claim(ctx context.Context, code string, userID int64) (int64, error) {
	query := `
		UPDATE invites
		SET claimed = TRUE, user_id = $1
		WHERE code = $2 AND claimed = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, userID, code)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
