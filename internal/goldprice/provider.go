// Package goldprice resolves the current gold price per gram of 24k gold
// from a chain of external providers with a constant fallback.
package goldprice

import "context"

// Provider fetches the gold price per gram from a single external source.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// PricePerGram returns the current USD price per gram of 24k gold.
	PricePerGram(ctx context.Context) (float64, error)
}

// GramsPerTroyOunce converts troy-ounce spot quotes to per-gram prices.
const GramsPerTroyOunce = 31.1035
