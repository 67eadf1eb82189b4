package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

// GoldAPIProvider fetches the 24k per-gram price from GoldAPI, a keyed
// provider. It is only placed in the resolver chain when a credential is
// configured.
type GoldAPIProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// goldAPIResponse is the subset of the provider response we consume.
// PriceGram24k arrives as an arbitrary JSON value in practice, so it is
// decoded loosely and coerced.
type goldAPIResponse struct {
	PriceGram24k json.Number `json:"price_gram_24k"`
}

// NewGoldAPIProvider creates a GoldAPIProvider.
func NewGoldAPIProvider(baseURL, apiKey string, timeout time.Duration) *GoldAPIProvider {
	return &GoldAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider.
func (p *GoldAPIProvider) Name() string { return "goldapi" }

// PricePerGram fetches the current 24k gold price per gram in USD.
func (p *GoldAPIProvider) PricePerGram(ctx context.Context) (float64, error) {
	endpoint := p.baseURL + "/api/XAU/USD"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-access-token", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch gram price: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body goldAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	price, err := body.PriceGram24k.Float64()
	if err != nil {
		return 0, fmt.Errorf("non-numeric price_gram_24k %q", body.PriceGram24k)
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("invalid price_gram_24k %v", price)
	}

	return price, nil
}
