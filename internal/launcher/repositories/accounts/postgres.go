// Package accounts provides the PostgreSQL repository for account_status rows.
package accounts

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

// serverRole is the single fixed role every account holds.
const serverRole = "Player"

// neverConnected is the profile sentinel for a NULL last_connection.
const neverConnected = "Never"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateInitial(ctx context.Context, userID int64, now time.Time) error {
	query := `
		INSERT INTO account_status (user_id, last_connection)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, now); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordConnection(ctx context.Context, userID int64) (int64, error) {
	query := `
		UPDATE account_status
		SET last_connection = now()
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) LoadProfile(ctx context.Context, username string) (*models.UserData, error) {
	query := `
		SELECT a.player_status, a.days_survived, a.last_connection
		FROM users u
		INNER JOIN account_status a ON u.id = a.user_id
		WHERE u.username = $1
	`
	var (
		status       bool
		daysSurvived int64
		lastConn     sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&status, &daysSurvived, &lastConn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	lastLogin := neverConnected
	if lastConn.Valid {
		lastLogin = lastConn.Time.Format("2006-01-02 15:04:05")
	}

	return &models.UserData{
		Status:       status,
		SurvivedDays: daysSurvived,
		LastLogin:    lastLogin,
		ServerRole:   serverRole,
	}, nil
}
