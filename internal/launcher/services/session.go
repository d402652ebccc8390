// Package services contains the launcher's business logic: session
// lifecycle management and the authentication entry points invoked by the
// frontend.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/permadeath/launcher/internal/common"
	"github.com/permadeath/launcher/internal/launcher/models"
	"github.com/permadeath/launcher/internal/launcher/repositories/repomanager"
	"github.com/permadeath/launcher/internal/logging"
)

// sessionValidity is how long an issued token stays valid. There is no
// refresh or sliding expiration; after 30 days the user logs in again.
const sessionValidity = 30 * 24 * time.Hour

// TokenCache is the single-slot local cache for the active session token.
// Implemented by secret.Cache over the OS keyring.
type TokenCache interface {
	Store(ctx context.Context, token string) error
	Load(ctx context.Context) (token string, ok bool)
	Delete(ctx context.Context) error
}

// SessionService issues, validates and revokes session tokens. The database
// is authoritative; the token cache is advisory, so cache failures after a
// committed database write are logged and never abort the operation.
type SessionService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	cache TokenCache
	log   logging.Logger
}

func NewSessionService(db *sql.DB, repos repomanager.RepositoryManager, cache TokenCache, log logging.Logger) *SessionService {
	return &SessionService{db: db, repos: repos, cache: cache, log: log}
}

// CreateSession generates a fresh random token for userID, persists it with
// a 30-day expiry, and caches it locally. A cache write failure leaves the
// session valid server-side.
func (s *SessionService) CreateSession(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(sessionValidity)

	if err := s.repos.Sessions(s.db).Create(ctx, userID, token, expiresAt); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}

	if err := s.cache.Store(ctx, token); err != nil {
		s.log.Error(ctx, "failed to cache session token locally", "error", err)
	}

	s.log.Info(ctx, "session created", "user_id", userID)
	return token, nil
}

// ValidateToken resolves a token to its owner. Unknown and expired tokens
// return (nil, nil).
func (s *SessionService) ValidateToken(ctx context.Context, token string) (*models.SessionInfo, error) {
	info, err := s.repos.Sessions(s.db).FindActive(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "token invalid or expired")
			return nil, nil
		}
		return nil, fmt.Errorf("validating token: %w", err)
	}
	s.log.Info(ctx, "token valid", "username", info.Username)
	return info, nil
}

// DeleteSession removes the session row, then clears the local cache.
// A store failure is surfaced; a cache-clear failure is only logged.
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	if err := s.repos.Sessions(s.db).Delete(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	if err := s.cache.Delete(ctx); err != nil {
		s.log.Error(ctx, "failed to clear cached session token", "error", err)
	}

	s.log.Info(ctx, "session deleted")
	return nil
}
