package cli

import (
	"context"
	"os"

	"github.com/permadeath/launcher/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session info is fetched from the resumed token and cached
// on the App, so the prompt reflects the logged-in user. The password byte
// slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn(msg)

	if info, err := a.auth.CheckSession(ctx); err == nil && info != nil {
		a.user = info
	}

	return nil
}

// Register prompts the user for a username, password and invitation code and
// attempts to create a new account.
//
// On success it prints the service confirmation message. The password byte
// slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	inviteCode, err := getSimpleText(a.reader, "Enter invitation code", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.Register(ctx, userName, string(password), inviteCode)
	if err != nil {
		a.log.Warn(ctx, "registration unsuccessful", "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

// Status re-validates the current session against the database and reports
// the result. A stale session clears the cached user.
func (a *App) Status(ctx context.Context) error {
	info, err := a.auth.CheckSession(ctx)
	if err != nil {
		return err
	}

	if info == nil {
		a.user = nil
		printlnFn("No active session")
		return nil
	}

	a.user = info
	printlnFn("Logged in as", info.Username)
	return nil
}

// Logout ends the current session and clears the cached user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout unsuccessful", "error", err)
		return err
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}
