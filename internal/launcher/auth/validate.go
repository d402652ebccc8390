// Package auth implements credential validation and password hashing for
// the launcher backend. Validation is pure and runs before any I/O.
package auth

import (
	"errors"

	"github.com/permadeath/launcher/internal/common"
)

// Registration failures are specific so the user can correct the input.
// Login failures never are; see ValidateLoginInput.
var (
	ErrUsernameLength   = errors.New("username must be between 3 and 16 characters")
	ErrUsernameCharset  = errors.New("username may only contain letters, numbers and underscores")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password cannot be longer than 128 characters")
	ErrInviteCodeFormat = errors.New("invalid invitation code")
)

func validUsernameCharset(username string) bool {
	for _, c := range username {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// ValidateLoginInput checks the shape of login credentials. Every rejection
// collapses into common.ErrInvalidCredentials so a caller cannot probe which
// rule failed.
func ValidateLoginInput(username, password string) error {
	if len(username) == 0 || len(username) > 16 {
		return common.ErrInvalidCredentials
	}
	if len(password) == 0 || len(password) > 128 {
		return common.ErrInvalidCredentials
	}
	if !validUsernameCharset(username) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// ValidateRegisterInput checks registration input and returns a distinct,
// user-facing error per rule.
func ValidateRegisterInput(username, password, inviteCode string) error {
	if len(username) < 3 || len(username) > 16 {
		return ErrUsernameLength
	}
	if !validUsernameCharset(username) {
		return ErrUsernameCharset
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 128 {
		return ErrPasswordTooLong
	}
	if len(inviteCode) == 0 || len(inviteCode) > 64 {
		return ErrInviteCodeFormat
	}
	return nil
}
