package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_Price tests price coercion rules.
func TestNormalize_Price(t *testing.T) {
	tests := []struct {
		name     string
		price    any
		expected float64
	}{
		{name: "number passes through", price: 1050.0, expected: 1050},
		{name: "numeric string", price: "1234.5", expected: 1234.5},
		{name: "currency formatted string", price: "$1,234.50", expected: 1234.5},
		{name: "entirely non-numeric", price: "free!", expected: 0},
		{name: "nil defaults to zero", price: nil, expected: 0},
		{name: "object defaults to zero", price: map[string]any{"usd": 10.0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]RawProduct{{Price: tt.price}})
			require.Len(t, got, 1)
			assert.InDelta(t, tt.expected, got[0].Price, 1e-9)
		})
	}
}

// TestNormalize_Popularity tests rating coercion and derivation.
func TestNormalize_Popularity(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawProduct
		expected float64
	}{
		{
			name:     "server value preserved",
			raw:      RawProduct{PopularityScore: 0.4, PopularityOutOf5: 2.0},
			expected: 2,
		},
		{
			name:     "derived from score when missing",
			raw:      RawProduct{PopularityScore: 0.4},
			expected: 2,
		},
		{
			name:     "derived from score when malformed",
			raw:      RawProduct{PopularityScore: 0.9, PopularityOutOf5: "n/a"},
			expected: 4.5,
		},
		{
			name:     "defaults to zero when both unusable",
			raw:      RawProduct{PopularityScore: "high", PopularityOutOf5: "n/a"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]RawProduct{tt.raw})
			require.Len(t, got, 1)
			assert.InDelta(t, tt.expected, got[0].PopularityOutOf5, 1e-9)
		})
	}
}

// TestNormalize_ID tests identifier assignment.
func TestNormalize_ID(t *testing.T) {
	got := Normalize([]RawProduct{
		{ID: "ring-1"},
		{AltID: "mongo-id"},
		{},
		{ID: 7.0},
	})
	require.Len(t, got, 4)
	assert.Equal(t, "ring-1", got[0].ID)
	assert.Equal(t, "mongo-id", got[1].ID)
	assert.Equal(t, "p-2", got[2].ID)
	assert.Equal(t, "7", got[3].ID)
}

// TestNormalize_Images tests image mapping normalization.
func TestNormalize_Images(t *testing.T) {
	t.Run("mapping preserved", func(t *testing.T) {
		got := Normalize([]RawProduct{{
			Images: map[string]any{"yellow": "https://example.com/y.jpg"},
		}})
		assert.Equal(t, map[string]string{"yellow": "https://example.com/y.jpg"}, got[0].Images)
	})

	t.Run("bare string wrapped as default", func(t *testing.T) {
		got := Normalize([]RawProduct{{Images: "https://example.com/one.jpg"}})
		assert.Equal(t, map[string]string{"default": "https://example.com/one.jpg"}, got[0].Images)
	})

	t.Run("missing images wrapped as empty default", func(t *testing.T) {
		got := Normalize([]RawProduct{{}})
		assert.Equal(t, map[string]string{"default": ""}, got[0].Images)
	})
}

// TestNormalize_EmptyInput tests that an empty array stays empty, not nil.
func TestNormalize_EmptyInput(t *testing.T) {
	got := Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
