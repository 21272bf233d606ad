// Package transport implements the authenticated HTTP pipeline of the client:
// an http.RoundTripper that attaches the session's bearer token to requests
// that need one, and recovers from token expiry by coordinating a single
// refresh and retrying the failed request exactly once.
package transport

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/adilbek-m/saudalink/internal/client/session"
	"github.com/adilbek-m/saudalink/internal/logging"
)

// ErrNoRefreshToken is returned by a Refresher when the session holds no
// refresh token, so there is nothing to renew with.
var ErrNoRefreshToken = errors.New("no refresh token available")

// Refresher obtains a new access token using the session's refresh token and
// stores it into the session before returning it. Implemented by the API
// client; any failure means the session cannot be renewed.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

type ctxKey int

// retriedKey marks a request that has already been re-issued once after a
// refresh. Such a request is never refreshed again.
const retriedKey ctxKey = iota

// AuthTransport is the http.RoundTripper wrapping all marketplace API calls.
type AuthTransport struct {
	base      http.RoundTripper
	session   *session.Session
	refresher Refresher
	rules     *ExemptionRules
	log       logging.Logger

	// expired is invoked after an unrecoverable refresh failure, once the
	// session has been cleared. The CLI uses it to drop back to the
	// logged-out prompt (the browser equivalent is a redirect to login).
	expired func()

	sf singleflight.Group
}

// New builds an AuthTransport. base may be nil, in which case
// http.DefaultTransport is used.
func New(base http.RoundTripper, sess *session.Session, refresher Refresher, rules *ExemptionRules, log logging.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if rules == nil {
		rules = DefaultRules("")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &AuthTransport{
		base:      base,
		session:   sess,
		refresher: refresher,
		rules:     rules,
		log:       log,
	}
}

// OnSessionExpired registers the hook called after a failed refresh has
// logged the session out. Must be set before the transport is used.
func (t *AuthTransport) OnSessionExpired(fn func()) {
	t.expired = fn
}

// RoundTrip implements http.RoundTripper.
//
// Transport-level errors on the original request pass through unchanged;
// the only automatic retry is the single re-issue after a successful token
// refresh triggered by a 401.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	out.Header.Set("X-Request-Id", uuid.NewString())

	exempt := t.rules.Exempt(req.Method, req.URL.Path)
	if !exempt {
		if token := t.session.AccessToken(); token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
		// No token: the request goes out unauthenticated and the
		// server rejects it.
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// A second 401 on a retried request, or a 401 from the refresh
	// endpoint itself, is final.
	if ctx.Value(retriedKey) != nil || t.rules.IsRefresh(req.URL.Path) {
		return resp, nil
	}

	token, refreshErr := t.refresh(ctx)
	if refreshErr != nil {
		t.log.Warn(ctx, "token refresh failed, clearing session", "err", refreshErr)
		if clearErr := t.session.Clear(ctx); clearErr != nil {
			t.log.Error(ctx, "failed to clear session", "err", clearErr)
		}
		if t.expired != nil {
			t.expired()
		}
		// The caller sees the original 401.
		return resp, nil
	}

	retry, ok := t.rewind(req, token)
	if !ok {
		// Body cannot be replayed; surface the 401 we have.
		return resp, nil
	}

	drain(resp)
	return t.base.RoundTrip(retry)
}

// refresh coalesces concurrent renewal attempts into one call to the
// Refresher. Every waiter receives the same token or the same error, and
// retries happen strictly after the shared operation settles.
func (t *AuthTransport) refresh(ctx context.Context) (string, error) {
	v, err, _ := t.sf.Do("refresh", func() (any, error) {
		t.log.Info(ctx, "access token expired, refreshing")
		return t.refresher.Refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// rewind clones req for the post-refresh retry: marked as retried, fresh
// request id, new bearer token, and a replayed body.
func (t *AuthTransport) rewind(req *http.Request, token string) (*http.Request, bool) {
	retry := req.Clone(context.WithValue(req.Context(), retriedKey, true))
	retry.Header.Set("X-Request-Id", uuid.NewString())
	retry.Header.Set("Authorization", "Bearer "+token)

	if req.Body == nil {
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
