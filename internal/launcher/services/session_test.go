package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/permadeath/launcher/internal/common"
	"github.com/permadeath/launcher/internal/launcher/models"
)

func newSessionService(t *testing.T) (*SessionService, *fakeRepoManager, *fakeTokenCache) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	cache := &fakeTokenCache{}
	return NewSessionService(db, rm, cache, discardLogger()), rm, cache
}

func TestCreateSession_IssuesUUIDTokenWith30DayExpiry(t *testing.T) {
	svc, rm, cache := newSessionService(t)

	before := time.Now()
	token, err := svc.CreateSession(context.Background(), 7)
	require.NoError(t, err)

	_, err = uuid.Parse(token)
	require.NoError(t, err, "token must be a canonical UUID string")

	require.Equal(t, token, rm.sessions.createdTok)
	require.Equal(t, int64(7), rm.sessions.createdUser)

	wantExp := before.Add(30 * 24 * time.Hour)
	require.WithinDuration(t, wantExp, rm.sessions.createdExp, time.Minute)

	require.Equal(t, token, cache.token, "token must land in the local cache")
}

func TestCreateSession_TokensAreUnique(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, 7)
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, 7)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestCreateSession_StoreFailureIsFatal(t *testing.T) {
	svc, rm, cache := newSessionService(t)
	rm.sessions.createErr = errors.New("db down")

	_, err := svc.CreateSession(context.Background(), 7)
	require.Error(t, err)
	require.False(t, cache.has, "cache must not hold a token for an unsaved session")
}

func TestCreateSession_CacheFailureIsNotFatal(t *testing.T) {
	svc, rm, cache := newSessionService(t)
	cache.storeErr = errors.New("keyring locked")

	token, err := svc.CreateSession(context.Background(), 7)
	require.NoError(t, err, "a committed session survives a cache write failure")
	require.NotEmpty(t, token)
	require.Equal(t, token, rm.sessions.createdTok)
}

func TestValidateToken_ResolvesOwner(t *testing.T) {
	svc, rm, _ := newSessionService(t)
	rm.sessions.findInfo = &models.SessionInfo{UserID: 7, Username: "alice"}

	info, err := svc.ValidateToken(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, int64(7), info.UserID)
	require.Equal(t, "alice", info.Username)
}

func TestValidateToken_UnknownOrExpiredIsNil(t *testing.T) {
	svc, rm, _ := newSessionService(t)
	rm.sessions.findErr = common.ErrNotFound

	info, err := svc.ValidateToken(context.Background(), "stale")
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestValidateToken_DBErrorSurfaces(t *testing.T) {
	svc, rm, _ := newSessionService(t)
	rm.sessions.findErr = errors.New("db down")

	_, err := svc.ValidateToken(context.Background(), "tok")
	require.Error(t, err)
}

func TestDeleteSession_RemovesRowThenCache(t *testing.T) {
	svc, rm, cache := newSessionService(t)
	cache.token, cache.has = "tok", true

	require.NoError(t, svc.DeleteSession(context.Background(), "tok"))
	require.Equal(t, "tok", rm.sessions.deletedTok)
	require.False(t, cache.has)
}

func TestDeleteSession_StoreErrorSurfaces(t *testing.T) {
	svc, rm, cache := newSessionService(t)
	rm.sessions.deleteErr = errors.New("db down")
	cache.token, cache.has = "tok", true

	require.Error(t, svc.DeleteSession(context.Background(), "tok"))
	require.True(t, cache.has, "cache untouched when the store delete fails")
}

func TestDeleteSession_CacheErrorIsNotFatal(t *testing.T) {
	svc, _, cache := newSessionService(t)
	cache.deleteErr = errors.New("keyring locked")

	require.NoError(t, svc.DeleteSession(context.Background(), "tok"))
}
