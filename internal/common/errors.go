// Package common defines shared sentinel errors and small helpers used
// across the launcher backend. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the single opaque login failure. Bad input,
	// unknown user, wrong password and storage faults all collapse into it
	// so a response never reveals which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInvite covers an invitation code that is absent or has
	// already been claimed.
	ErrInvalidInvite = errors.New("the invitation code is invalid or has already been used")

	// ErrRegistrationFailed is the generic registration fault shown when
	// the root cause is internal (storage, hashing).
	ErrRegistrationFailed = errors.New("an error occurred while registering the account, please contact support")

	// ErrInternal is the generic service-level failure.
	ErrInternal = errors.New("internal error")
)
