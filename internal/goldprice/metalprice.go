package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// MetalpriceProvider fetches spot rates from MetalpriceAPI, a keyless
// provider (the "demo" key works without signup). The XAU rate is expressed
// as troy ounces per USD, so it is inverted and converted to grams.
type MetalpriceProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// metalpriceResponse is the subset of the provider response we consume.
type metalpriceResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// NewMetalpriceProvider creates a MetalpriceProvider.
func NewMetalpriceProvider(baseURL, apiKey string, timeout time.Duration) *MetalpriceProvider {
	return &MetalpriceProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider.
func (p *MetalpriceProvider) Name() string { return "metalpriceapi" }

// PricePerGram fetches the latest XAU rate and converts it to USD per gram.
func (p *MetalpriceProvider) PricePerGram(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/v1/latest?api_key=%s&base=USD&currencies=XAU",
		p.baseURL, url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch spot rate: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body metalpriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	rate, ok := body.Rates["XAU"]
	if !ok {
		return 0, fmt.Errorf("response missing XAU rate")
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("invalid XAU rate %v", rate)
	}

	// The rate is XAU per USD; invert to USD per troy ounce, then per gram.
	pricePerOunce := 1 / rate
	return pricePerOunce / GramsPerTroyOunce, nil
}
