package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/permadeath/launcher/internal/common"
	"github.com/permadeath/launcher/internal/dbx"
	"github.com/permadeath/launcher/internal/launcher/auth"
	"github.com/permadeath/launcher/internal/launcher/models"
	"github.com/permadeath/launcher/internal/launcher/repositories/repomanager"
	"github.com/permadeath/launcher/internal/logging"
)

// AuthService sequences validation, hashing, storage and session management
// behind the entry points the frontend invokes.
//
// Every login failure (malformed input, unknown user, wrong password,
// unreachable database) surfaces as common.ErrInvalidCredentials. The real
// cause is logged and stays internal, so responses cannot be used to
// enumerate accounts. Registration errors, by contrast, are specific on
// purpose: the user typed the invite code and needs to know what to fix.
type AuthService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	hasher   *auth.Hasher
	sessions *SessionService
	cache    TokenCache
	log      logging.Logger
}

func NewAuthService(db *sql.DB, repos repomanager.RepositoryManager, hasher *auth.Hasher, sessions *SessionService, cache TokenCache, log logging.Logger) *AuthService {
	return &AuthService{
		db:       db,
		repos:    repos,
		hasher:   hasher,
		sessions: sessions,
		cache:    cache,
		log:      log,
	}
}

// Login authenticates the user and returns a fresh session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := auth.ValidateLoginInput(username, password); err != nil {
		s.log.Warn(ctx, "login attempt with invalid input shape")
		return "", common.ErrInvalidCredentials
	}

	s.log.Info(ctx, "attempting to authenticate user", "username", username)

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "user not found", "username", username)
		} else {
			s.log.Error(ctx, "database error during login", "error", err)
		}
		return "", common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "error verifying password", "error", err)
		return "", common.ErrInvalidCredentials
	}
	if !ok {
		s.log.Info(ctx, "incorrect password", "username", username)
		return "", common.ErrInvalidCredentials
	}

	token, err := s.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		s.log.Error(ctx, "error creating session", "username", username, "error", err)
		return "", common.ErrInvalidCredentials
	}

	// A fresh login is a reconnection event. Zero rows is fine: the status
	// row may lag behind for accounts provisioned out of band.
	if _, err := s.repos.Accounts(s.db).RecordConnection(ctx, user.ID); err != nil {
		s.log.Error(ctx, "failed to record connection", "user_id", user.ID, "error", err)
	}

	s.log.Info(ctx, "successful login", "username", username)
	return token, nil
}

// Register redeems an invitation code and provisions the account in a single
// transaction: the user row, the claimed invite and the initial
// account_status row all commit or roll back together.
func (s *AuthService) Register(ctx context.Context, username, password, inviteCode string) (string, error) {
	if err := auth.ValidateRegisterInput(username, password, inviteCode); err != nil {
		return "", err
	}

	s.log.Info(ctx, "starting registration", "username", username)

	passwordHash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return "", common.ErrRegistrationFailed
	}

	var newID int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		invite, err := s.repos.Invites(tx).GetByCodeForUpdate(ctx, inviteCode)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrInvalidInvite
			}
			return err
		}
		if invite.Claimed {
			return common.ErrInvalidInvite
		}

		newID, err = s.repos.Users(tx).Create(ctx, username, passwordHash)
		if err != nil {
			return err
		}

		n, err := s.repos.Invites(tx).Claim(ctx, inviteCode, newID)
		if err != nil {
			return err
		}
		if n == 0 {
			// Lost the race: another transaction claimed the code between
			// our lock and the update.
			return common.ErrInvalidInvite
		}

		return s.repos.Accounts(tx).CreateInitial(ctx, newID, time.Now())
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInvite) {
			s.log.Warn(ctx, "registration with invalid or used invite code", "username", username)
			return "", common.ErrInvalidInvite
		}
		s.log.Error(ctx, "database error during registration", "username", username, "error", err)
		return "", common.ErrRegistrationFailed
	}

	s.log.Info(ctx, "user registered", "username", username, "user_id", newID)
	return fmt.Sprintf("User '%s' registered successfully with ID %d!", username, newID), nil
}

// CheckSession reports who is logged in locally, or nil when nobody is.
// Every failure on this path (no cached token, keyring fault, expired or
// unknown token, unreachable database) degrades to "not logged in".
func (s *AuthService) CheckSession(ctx context.Context) (*models.SessionInfo, error) {
	token, ok := s.cache.Load(ctx)
	if !ok {
		return nil, nil
	}

	info, err := s.sessions.ValidateToken(ctx, token)
	if err != nil {
		s.log.Error(ctx, "error validating cached session", "error", err)
		return nil, nil
	}
	return info, nil
}

// Logout ends the locally cached session. With no cached token there is
// nothing to do.
func (s *AuthService) Logout(ctx context.Context) error {
	token, ok := s.cache.Load(ctx)
	if !ok {
		s.log.Info(ctx, "no active session to close")
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

// LoadProfile returns the profile view for a username, or
// common.ErrNotFound.
func (s *AuthService) LoadProfile(ctx context.Context, username string) (*models.UserData, error) {
	data, err := s.repos.Accounts(s.db).LoadProfile(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.log.Error(ctx, "error loading profile", "username", username, "error", err)
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return data, nil
}
