// Package api is the HTTP client for the Saudalink marketplace REST API.
// All calls go through the authenticated transport pipeline, which attaches
// the bearer token where required and recovers transparently from access
// token expiry. The refresh call itself bypasses the pipeline.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adilbek-m/saudalink/internal/client/session"
	"github.com/adilbek-m/saudalink/internal/client/transport"
	"github.com/adilbek-m/saudalink/internal/logging"
)

// requestTimeout bounds every outbound API call.
const requestTimeout = 10 * time.Second

// Client is the marketplace API client. It also implements
// transport.Refresher: the transport calls back into Refresh on a 401.
type Client struct {
	baseURL string
	http    *http.Client
	bare    *http.Client // refresh calls, outside the auth pipeline
	session *session.Session
	tr      *transport.AuthTransport
	log     logging.Logger
}

// New builds a Client for the API at baseURL (e.g.
// "https://api.saudalink.kz/api/v1"). The exemption table is derived from
// the URL's path prefix.
func New(baseURL string, sess *session.Session, log logging.Logger) (*Client, error) {
	if log == nil {
		log = logging.Nop()
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		bare:    &http.Client{Timeout: requestTimeout},
		session: sess,
		log:     log,
	}

	c.tr = transport.New(nil, sess, c, transport.DefaultRules(u.Path), log)
	c.http = &http.Client{Transport: c.tr, Timeout: requestTimeout}

	return c, nil
}

// OnSessionExpired registers the hook fired when a failed refresh logs the
// session out.
func (c *Client) OnSessionExpired(fn func()) {
	c.tr.OnSessionExpired(fn)
}

// Refresh implements transport.Refresher: it trades the session's refresh
// token for a new access token and stores it into the session. The refresh
// token is not rotated by this endpoint.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return "", transport.ErrNoRefreshToken
	}

	in := map[string]string{"refresh": refreshToken}
	var out struct {
		Access string `json:"access"`
	}
	if err := c.do(ctx, c.bare, http.MethodPost, "/auth/token/refresh/", in, &out); err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	if out.Access == "" {
		return "", fmt.Errorf("token refresh failed: empty access token in response")
	}

	if err := c.session.SetAccessToken(ctx, out.Access); err != nil {
		return "", fmt.Errorf("failed to store refreshed token: %w", err)
	}
	return out.Access, nil
}

// do issues a JSON request and decodes a JSON response into out (skipped
// when out is nil). Error mapping: 401/403 → ErrUnauthorized, 5xx →
// ErrUnavailable, other non-2xx → *APIError with the decoded detail.
func (c *Client) do(ctx context.Context, client *http.Client, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return ErrUnavailable
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &APIError{Status: resp.StatusCode, Detail: payload.Detail}
}

// listResponse is the paginated list envelope the API wraps collections in.
type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}
