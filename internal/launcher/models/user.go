// Package models holds the row types persisted by the launcher backend.
package models

import "time"

// User is a row of the users table. Rows are created only through invite
// redemption and are never deleted by this backend.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// UserData is the profile view joined from users and account_status.
// LastLogin renders as "YYYY-MM-DD HH:MM:SS" or "Never".
type UserData struct {
	Status       bool   `json:"status"`
	SurvivedDays int64  `json:"survived_days"`
	LastLogin    string `json:"last_login"`
	ServerRole   string `json:"server_role"`
}

// SessionInfo identifies the authenticated user behind a valid token.
type SessionInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Invite is a single-use code gating account creation. A claimed invite is
// always linked to the user it provisioned.
type Invite struct {
	ID      int64
	Code    string
	Claimed bool
	UserID  *int64
}

// Session is a row of the sessions table. Expired rows are filtered at read
// time rather than reaped.
type Session struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
