// Package secret adapts the OS-native secret store (keychain, libsecret,
// Windows Credential Manager) into a single-slot cache for the active
// session token.
//
// The relational store stays authoritative for sessions; this cache is
// best-effort convenience so the user is not re-prompted on every launch.
// Losing the cached token only forces a re-login.
package secret

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/permadeath/launcher/internal/logging"
)

// The slot is fixed per machine account, not per user: a desktop install
// holds at most one cached session at a time, and each new login overwrites
// the previous one.
const (
	serviceName  = "permadeath_launcher"
	tokenAccount = "session_token"
)

// Cache is the single-slot token cache over the system keyring.
type Cache struct {
	log logging.Logger
}

func NewCache(log logging.Logger) *Cache {
	return &Cache{log: log}
}

// Store writes or overwrites the cached session token.
func (c *Cache) Store(ctx context.Context, token string) error {
	if err := keyring.Set(serviceName, tokenAccount, token); err != nil {
		return fmt.Errorf("saving token to keyring: %w", err)
	}
	c.log.Info(ctx, "session token saved to system keyring")
	return nil
}

// Load returns the cached token, or ok=false when no token is stored.
// Backend read failures are logged and reported as absent: the check-session
// flow must degrade to "not logged in", never to an error.
func (c *Cache) Load(ctx context.Context) (token string, ok bool) {
	token, err := keyring.Get(serviceName, tokenAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			c.log.Info(ctx, "no session token in keyring")
		} else {
			c.log.Error(ctx, "error reading token from keyring", "error", err)
		}
		return "", false
	}
	return token, true
}

// Delete removes the cached token. A missing entry is not an error.
func (c *Cache) Delete(ctx context.Context) error {
	if err := keyring.Delete(serviceName, tokenAccount); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("deleting token from keyring: %w", err)
	}
	return nil
}
