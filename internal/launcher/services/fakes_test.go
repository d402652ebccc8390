package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/permadeath/launcher/internal/dbx"
	"github.com/permadeath/launcher/internal/launcher/models"
	accountsrepo "github.com/permadeath/launcher/internal/launcher/repositories/accounts"
	invitesrepo "github.com/permadeath/launcher/internal/launcher/repositories/invites"
	sessionsrepo "github.com/permadeath/launcher/internal/launcher/repositories/sessions"
	usersrepo "github.com/permadeath/launcher/internal/launcher/repositories/users"
	"github.com/permadeath/launcher/internal/logging"
)

// --- shared helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// --- fake repositories ---

type fakeUsersRepo struct {
	user      *models.User
	getErr    error
	getCalls  int
	createID  int64
	createErr error
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

type fakeInvitesRepo struct {
	invite    *models.Invite
	getErr    error
	claimN    int64
	claimErr  error
	claimWith int64
}

func (f *fakeInvitesRepo) GetByCodeForUpdate(ctx context.Context, code string) (*models.Invite, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.invite, nil
}

func (f *fakeInvitesRepo) Claim(ctx context.Context, code string, userID int64) (int64, error) {
	f.claimWith = userID
	if f.claimErr != nil {
		return 0, f.claimErr
	}
	return f.claimN, nil
}

type fakeAccountsRepo struct {
	createErr   error
	created     bool
	recordN     int64
	recordErr   error
	recordCalls int
	profile     *models.UserData
	profileErr  error
}

func (f *fakeAccountsRepo) CreateInitial(ctx context.Context, userID int64, now time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = true
	return nil
}

func (f *fakeAccountsRepo) RecordConnection(ctx context.Context, userID int64) (int64, error) {
	f.recordCalls++
	return f.recordN, f.recordErr
}

func (f *fakeAccountsRepo) LoadProfile(ctx context.Context, username string) (*models.UserData, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

type fakeSessionsRepo struct {
	createErr   error
	createdTok  string
	createdExp  time.Time
	createdUser int64
	findInfo    *models.SessionInfo
	findErr     error
	deleteErr   error
	deletedTok  string
}

func (f *fakeSessionsRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdUser = userID
	f.createdTok = token
	f.createdExp = expiresAt
	return nil
}

func (f *fakeSessionsRepo) FindActive(ctx context.Context, token string) (*models.SessionInfo, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findInfo, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedTok = token
	return nil
}

// --- fake repository manager ---

type fakeRepoManager struct {
	users    *fakeUsersRepo
	invites  *fakeInvitesRepo
	accounts *fakeAccountsRepo
	sessions *fakeSessionsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    &fakeUsersRepo{},
		invites:  &fakeInvitesRepo{},
		accounts: &fakeAccountsRepo{},
		sessions: &fakeSessionsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.users }
func (m *fakeRepoManager) Invites(db dbx.DBTX) invitesrepo.Repository         { return m.invites }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository       { return m.accounts }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository       { return m.sessions }

// --- fake token cache ---

type fakeTokenCache struct {
	token     string
	has       bool
	storeErr  error
	deleteErr error
	deleted   bool
}

func (c *fakeTokenCache) Store(ctx context.Context, token string) error {
	if c.storeErr != nil {
		return c.storeErr
	}
	c.token = token
	c.has = true
	return nil
}

func (c *fakeTokenCache) Load(ctx context.Context) (string, bool) {
	return c.token, c.has
}

func (c *fakeTokenCache) Delete(ctx context.Context) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.token = ""
	c.has = false
	c.deleted = true
	return nil
}
