// Package cli implements the interactive launcher console: login, invite
// registration, session status and player profile commands on top of the
// auth service.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/permadeath/launcher/internal/launcher/models"
	"github.com/permadeath/launcher/internal/logging"
)

// authAPI is the service surface the console needs. The real
// services.AuthService satisfies it; tests provide a stub.
type authAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, inviteCode string) (string, error)
	CheckSession(ctx context.Context) (*models.SessionInfo, error)
	Logout(ctx context.Context) error
	LoadProfile(ctx context.Context, username string) (*models.UserData, error)
}

type App struct {
	auth   authAPI
	log    logging.Logger
	reader *bufio.Reader
	user   *models.SessionInfo
}

func NewApp(auth authAPI, log logging.Logger) *App {
	return &App{auth: auth, log: log, reader: bufio.NewReader(os.Stdin)}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run resumes a cached session if one is still valid and then enters the
// command loop. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	if info, err := a.auth.CheckSession(ctx); err == nil && info != nil {
		a.user = info
		printlnFn("Welcome back,", info.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.Username + ")"
}
