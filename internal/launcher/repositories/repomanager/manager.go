package repomanager

import (
	"context"
	"database/sql"

	"github.com/permadeath/launcher/internal/dbx"
	"github.com/permadeath/launcher/internal/launcher/repositories/accounts"
	"github.com/permadeath/launcher/internal/launcher/repositories/invites"
	"github.com/permadeath/launcher/internal/launcher/repositories/sessions"
	"github.com/permadeath/launcher/internal/launcher/repositories/users"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX, so a
// service can use the same repository code on the pool or inside a
// transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Invites(db dbx.DBTX) invites.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
