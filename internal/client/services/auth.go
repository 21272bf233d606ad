// Package services contains application services for the Saudalink client:
// thin orchestration between the API client, the session, and the pricing
// machinery, consumed by the CLI.
package services

import (
	"context"
	"fmt"

	"github.com/adilbek-m/saudalink/internal/client/api"
	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/session"
)

// AuthAPI is the slice of the API client the auth service depends on.
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, models.TokenPair, error)
	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	Me(ctx context.Context) (*models.User, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; the issued token pair signs the session in.
//   - Login: authenticate and persist the token pair.
//   - Logout: drop the session, in memory and in durable storage.
//   - CurrentUser: the profile of the signed-in user, fetched lazily on
//     first use and cached on the session afterwards.
type AuthService interface {
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsAuthenticated() bool
}

type authService struct {
	api     AuthAPI
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client and
// session.
func NewAuthService(api AuthAPI, sess *session.Session) AuthService {
	return &authService{api: api, session: sess}
}

func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	user, pair, err := a.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.session.Update(ctx, pair); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	a.session.SetUser(user)
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	pair, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Update(ctx, pair); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	if u := a.session.User(); u != nil {
		return u, nil
	}

	u, err := a.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	a.session.SetUser(u)
	return u, nil
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}
