package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/zenfit/zenfit/internal/client/models"
	"github.com/zenfit/zenfit/internal/client/tokenx"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for account details and creates an account. On success the
// session adopts the returned credential and profile, so the user is logged
// in right away.
//
// The password byte slice is wiped before returning. Failures are printed
// with the display message carried by the session's error.
func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name (optional)", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	req := models.RegisterRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(password),
	}
	if err := a.session.Register(ctx, req); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.greet()
	return nil
}

// login prompts for credentials and authenticates.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := a.session.Login(ctx, req); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.greet()
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) greet() {
	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", u.DisplayName())
		return
	}
	fmt.Fprintln(a.out, "Success!")
}

// status reports the session and connectivity state. Credential claims are
// shown for information only; expiry is still discovered server-side.
func (a *App) status() {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.DisplayName(), u.Email)
	} else {
		fmt.Fprintln(a.out, "Session restored from a previous run; profile loads on next login.")
	}

	if claims, err := tokenx.Inspect(a.session.Token()); err == nil {
		fmt.Fprintf(a.out, "User id: %d\n", claims.UserID)
		if !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "Credential expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
			if claims.Expired(time.Now()) {
				fmt.Fprintln(a.out, "Credential looks expired; the next request will likely fail.")
			}
		}
	}

	if a.online.Load() {
		fmt.Fprintln(a.out, "Server: reachable")
	} else {
		fmt.Fprintln(a.out, "Server: unreachable")
	}
}
