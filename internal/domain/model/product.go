// Package model defines the core domain entities for the catalog service.
package model

// Product is a catalog entry as stored in the product file.
// The list is loaded once at startup and never mutated afterwards.
//
// @Description Static jewelry product with per-color image variants
// @Example {"name": "Engagement Ring 1", "popularityScore": 0.85, "weight": 2.1, "images": {"yellow": "https://..."}}
type Product struct {
	// ID identifies the product. Optional in the catalog file; assigned
	// positionally at load time when absent.
	ID string `json:"id,omitempty"`
	// Name is the display name
	Name string `json:"name"`
	// PopularityScore is a metric in [0,1] driving price and rating
	PopularityScore float64 `json:"popularityScore"`
	// Weight is the product weight in grams
	Weight float64 `json:"weight"`
	// Images maps a color variant key (e.g. "yellow") to an image URL
	Images map[string]string `json:"images"`
}

// PricedProduct is a Product with derived fields populated.
// Derived fields are recomputed on every catalog fetch and never stored.
//
// @Description Product with price and rating computed from the current gold price
type PricedProduct struct {
	Product
	// Price in USD: (popularityScore + 1) * weight * goldPricePerGram
	Price float64 `json:"price"`
	// PopularityOutOf5 is the popularity score on a 0-5 scale
	PopularityOutOf5 float64 `json:"popularityOutOf5"`
}

// Valid reports whether the product satisfies the catalog invariants:
// popularity score in [0,1], positive weight, and no empty image keys.
func (p Product) Valid() bool {
	if p.PopularityScore < 0 || p.PopularityScore > 1 {
		return false
	}
	if p.Weight <= 0 {
		return false
	}
	for key := range p.Images {
		if key == "" {
			return false
		}
	}
	return true
}
