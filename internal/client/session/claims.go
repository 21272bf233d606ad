package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoAccessToken = errors.New("no access token")

// TokenClaims parses the registered claims of the current access token
// without verifying its signature. The client has no signing key; the claims
// are used for display (expiry, subject) only — the server remains the
// authority on token validity.
func (s *Session) TokenClaims() (*jwt.RegisteredClaims, error) {
	token := s.AccessToken()
	if token == "" {
		return nil, ErrNoAccessToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
