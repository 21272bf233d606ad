// Package session owns the authenticated session of the client: the
// access/refresh token pair and the lazily fetched user profile. The session
// is loaded from durable storage at startup so it survives restarts, and the
// in-memory view is updated strictly after the durable one, inside a single
// locked update, so the two never disagree for longer than one update.
package session

import (
	"context"
	"sync"

	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/storage"
)

// Storage keys for the token pair. Fixed so a session written by one build
// is readable by the next.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Session holds the client's authentication state. Safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	kv   storage.KV
	tx   storage.TxRunner
	user *models.User
	pair models.TokenPair
}

// New creates a Session backed by kv. A nil tx falls back to plain
// (non-transactional) writes.
func New(kv storage.KV, tx storage.TxRunner) *Session {
	if tx == nil {
		tx = storage.PlainTxRunner(kv)
	}
	return &Session{kv: kv, tx: tx}
}

// Init loads the token pair from durable storage. Missing keys leave the
// session unauthenticated; that is not an error.
func (s *Session) Init(ctx context.Context) error {
	access, err := s.kv.Get(ctx, accessTokenKey)
	if err != nil {
		return err
	}
	refresh, err := s.kv.Get(ctx, refreshTokenKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = models.TokenPair{Access: string(access), Refresh: string(refresh)}
	return nil
}

// Update replaces both tokens together, durably first and in memory second.
// Called on login, registration, and any flow that issues a fresh pair.
// The cached user profile is dropped so it gets refetched for the new identity.
func (s *Session) Update(ctx context.Context, pair models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.tx(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := kv.Set(ctx, accessTokenKey, []byte(pair.Access)); err != nil {
			return err
		}
		return kv.Set(ctx, refreshTokenKey, []byte(pair.Refresh))
	})
	if err != nil {
		return err
	}

	s.pair = pair
	s.user = nil
	return nil
}

// SetAccessToken replaces only the access token. Used on refresh: the
// refresh token is not rotated by the token endpoint.
func (s *Session) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, accessTokenKey, []byte(token)); err != nil {
		return err
	}
	s.pair.Access = token
	return nil
}

// Clear drops both tokens and the user profile, in memory and in durable
// storage. This is logout: after Clear, IsAuthenticated reports false and
// storage holds neither token.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.tx(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := kv.Delete(ctx, accessTokenKey); err != nil {
			return err
		}
		return kv.Delete(ctx, refreshTokenKey)
	})
	if err != nil {
		return err
	}

	s.pair = models.TokenPair{}
	s.user = nil
	return nil
}

// AccessToken returns the current access token, empty if absent.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Access
}

// RefreshToken returns the current refresh token, empty if absent.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Refresh
}

// IsAuthenticated reports whether an access token is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Access != ""
}

// User returns the cached profile, nil if it has not been fetched yet.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser caches the fetched profile.
func (s *Session) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}
