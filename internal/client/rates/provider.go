// Package rates fetches currency exchange rates, caches them with a
// freshness window, and converts and formats marketplace prices. The rate
// source is a third party: every expected failure degrades to showing the
// original amount, never to an error in the UI path.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// DefaultTimeout bounds a single rate-source call.
const DefaultTimeout = 10 * time.Second

// Provider fetches a rate table for a base currency from the external
// source. Rates are multiplicative: amount_in_target = amount_in_base * rate.
type Provider interface {
	FetchRates(ctx context.Context, base models.Currency) (map[models.Currency]float64, error)
}

// HTTPProvider talks to an open.er-api.com style endpoint:
// GET <baseURL>/<CODE> returns {"result": "success", "base_code": CODE,
// "rates": {...}}.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider builds a provider for baseURL. A nil client gets a default
// one with DefaultTimeout.
func NewHTTPProvider(baseURL string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPProvider{baseURL: baseURL, client: client}
}

type ratesResponse struct {
	Result   string                      `json:"result"`
	BaseCode string                      `json:"base_code"`
	Rates    map[models.Currency]float64 `json:"rates"`
}

func (p *HTTPProvider) FetchRates(ctx context.Context, base models.Currency) (map[models.Currency]float64, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if body.Result != "success" {
		return nil, fmt.Errorf("rate source returned result %q", body.Result)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate source returned no rates for %s", base)
	}

	return body.Rates, nil
}
