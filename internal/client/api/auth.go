package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// RegisterRequest is the payload for creating a marketplace account.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
}

// registerResponse: the API issues a token pair together with the created
// profile so a new account is signed in immediately.
type registerResponse struct {
	User    models.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

// Register creates an account and returns the profile plus the issued token
// pair. The caller (auth service) is responsible for storing the pair into
// the session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, models.TokenPair, error) {
	var out registerResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/auth/users/", req, &out); err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("register failed: %w", err)
	}
	return &out.User, models.TokenPair{Access: out.Access, Refresh: out.Refresh}, nil
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	in := map[string]string{"email": email, "password": password}
	var out models.TokenPair
	if err := c.do(ctx, c.http, http.MethodPost, "/auth/token/", in, &out); err != nil {
		return models.TokenPair{}, fmt.Errorf("login failed: %w", err)
	}
	return out, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, c.http, http.MethodGet, "/auth/users/me/", nil, &out); err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	return &out, nil
}
