package goldprice

import (
	"context"
	"time"

	"github.com/talhanuhuymaz/Renart-Case/config"
	"github.com/talhanuhuymaz/Renart-Case/internal/logger"
	"github.com/talhanuhuymaz/Renart-Case/internal/metrics"
)

// FallbackPrice is the USD per-gram 24k gold price used when every
// provider fails or none is configured.
const FallbackPrice = 75.0

// Resolver resolves the gold price per gram from an ordered provider
// chain. Resolution never fails: the first successful provider wins and
// the constant fallback covers the rest. Results are not cached, so every
// call may reach out to external providers.
type Resolver struct {
	providers []Provider
	fallback  float64
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFallbackPrice overrides the fallback constant.
func WithFallbackPrice(price float64) ResolverOption {
	return func(r *Resolver) {
		r.fallback = price
	}
}

// NewResolver creates a Resolver over the given providers, consulted in
// order.
func NewResolver(providers []Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		providers: providers,
		fallback:  FallbackPrice,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewResolverFromConfig builds the canonical chain: MetalpriceAPI first,
// GoldAPI second when a credential is configured.
func NewResolverFromConfig(cfg config.GoldPriceConfig) *Resolver {
	providers := []Provider{
		NewMetalpriceProvider(cfg.MetalpriceBaseURL, cfg.MetalpriceAPIKey, cfg.RequestTimeout),
	}
	if cfg.GoldAPIKey != "" {
		providers = append(providers, NewGoldAPIProvider(cfg.GoldAPIBaseURL, cfg.GoldAPIKey, cfg.RequestTimeout))
	}
	return NewResolver(providers)
}

// Resolve returns a usable USD per-gram price. Provider failures are
// logged and recorded, never propagated.
func (r *Resolver) Resolve(ctx context.Context) float64 {
	log := logger.Logger()

	for _, p := range r.providers {
		start := time.Now()
		price, err := p.PricePerGram(ctx)
		duration := time.Since(start)

		if err != nil {
			metrics.RecordGoldPriceFetch(p.Name(), "error", duration)
			log.Warn().
				Str("provider", p.Name()).
				Err(err).
				Msg("Gold price provider failed")
			continue
		}

		metrics.RecordGoldPriceFetch(p.Name(), "success", duration)
		log.Info().
			Str("provider", p.Name()).
			Float64("price_per_gram", price).
			Msg("Gold price resolved")
		return price
	}

	metrics.RecordGoldPriceFetch("fallback", "used", 0)
	log.Info().
		Float64("price_per_gram", r.fallback).
		Msg("Using fallback gold price")
	return r.fallback
}
