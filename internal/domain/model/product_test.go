package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProduct_Valid tests the catalog invariants.
func TestProduct_Valid(t *testing.T) {
	base := Product{
		Name:            "Ring",
		PopularityScore: 0.5,
		Weight:          2,
		Images:          map[string]string{"yellow": "https://example.com/y.jpg"},
	}

	tests := []struct {
		name   string
		mutate func(*Product)
		valid  bool
	}{
		{name: "valid product", mutate: func(p *Product) {}, valid: true},
		{name: "score at lower bound", mutate: func(p *Product) { p.PopularityScore = 0 }, valid: true},
		{name: "score at upper bound", mutate: func(p *Product) { p.PopularityScore = 1 }, valid: true},
		{name: "score above one", mutate: func(p *Product) { p.PopularityScore = 1.01 }, valid: false},
		{name: "negative score", mutate: func(p *Product) { p.PopularityScore = -0.01 }, valid: false},
		{name: "zero weight", mutate: func(p *Product) { p.Weight = 0 }, valid: false},
		{name: "empty image key", mutate: func(p *Product) { p.Images = map[string]string{"": "x"} }, valid: false},
		{name: "no images is allowed", mutate: func(p *Product) { p.Images = nil }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			assert.Equal(t, tt.valid, p.Valid())
		})
	}
}

// TestPricedProduct_JSON verifies the wire shape the clients depend on.
func TestPricedProduct_JSON(t *testing.T) {
	p := PricedProduct{
		Product: Product{
			ID:              "p-0",
			Name:            "Ring",
			PopularityScore: 0.4,
			Weight:          10,
			Images:          map[string]string{"yellow": "https://example.com/y.jpg"},
		},
		Price:            1050,
		PopularityOutOf5: 2,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "p-0", got["id"])
	assert.Equal(t, "Ring", got["name"])
	assert.InDelta(t, 0.4, got["popularityScore"], 1e-9)
	assert.InDelta(t, 10, got["weight"], 1e-9)
	assert.InDelta(t, 1050, got["price"], 1e-9)
	assert.InDelta(t, 2, got["popularityOutOf5"], 1e-9)
	assert.Contains(t, got, "images")
}
