package cli

import (
	"context"
	"fmt"
)

// Profile shows the hardcore profile of the logged-in player: alive state,
// days survived, last connection and server role.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	data, err := a.auth.LoadProfile(ctx, a.user.Username)
	if err != nil {
		a.log.Warn(ctx, "error loading profile", "error", err)
		printlnFn("Could not load profile")
		return err
	}

	state := "Dead"
	if data.Status {
		state = "Alive"
	}

	printlnFn(fmt.Sprintf("Player:          %s", a.user.Username))
	printlnFn(fmt.Sprintf("Status:          %s", state))
	printlnFn(fmt.Sprintf("Days survived:   %d", data.SurvivedDays))
	printlnFn(fmt.Sprintf("Last connection: %s", data.LastLogin))
	printlnFn(fmt.Sprintf("Server role:     %s", data.ServerRole))
	return nil
}
