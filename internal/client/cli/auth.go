package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adilbek-m/saudalink/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for the account details and creates a new account via the
// AuthService. The issued tokens sign the new account in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	companyName, err := getSimpleText(a.reader, "Enter company name", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, api.RegisterRequest{
		Email:       email,
		Password:    string(password),
		FirstName:   firstName,
		LastName:    lastName,
		CompanyName: companyName,
	})
	if err != nil {
		a.reportError(ctx, "registration failed", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s! You are signed in.", user.Email))
	return nil
}

// Login prompts for credentials and authenticates against the marketplace.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		a.reportError(ctx, "login failed", err)
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Logout drops the session, in memory and in durable storage.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.reportError(ctx, "logout failed", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI shows the profile of the signed-in user and, when the access token
// carries one, the session expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.reportError(ctx, "could not fetch profile", err)
		return err
	}

	printlnFn(fmt.Sprintf("%s %s <%s>, %s (%s)", user.FirstName, user.LastName, user.Email, user.CompanyName, user.Role))

	if claims, err := a.session.TokenClaims(); err == nil && claims.ExpiresAt != nil {
		printlnFn("Access token expires at", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}

// reportError tells the user what went wrong in plain words and logs the
// underlying error.
func (a *App) reportError(ctx context.Context, msg string, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn(msg + ": not authorized")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn(msg + ": service unavailable, try again later")
	default:
		printlnFn(msg + ": " + err.Error())
	}
	a.log.Error(ctx, msg, "error", err)
}
