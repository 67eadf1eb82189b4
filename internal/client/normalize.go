package client

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RawProduct mirrors one element of the /products array with every field
// the upstream may get wrong left loosely typed.
type RawProduct struct {
	ID               any    `json:"id"`
	AltID            any    `json:"_id"`
	Name             string `json:"name"`
	PopularityScore  any    `json:"popularityScore"`
	Weight           any    `json:"weight"`
	Images           any    `json:"images"`
	Price            any    `json:"price"`
	PopularityOutOf5 any    `json:"popularityOutOf5"`
}

// Product is a catalog entry ready for rendering.
type Product struct {
	ID               string
	Name             string
	PopularityScore  float64
	Weight           float64
	Images           map[string]string
	Price            float64
	PopularityOutOf5 float64
}

var nonNumericRe = regexp.MustCompile(`[^0-9.-]+`)

// Normalize coerces a raw product array into well-typed products.
// It never fails: unusable fields get safe defaults.
func Normalize(raw []RawProduct) []Product {
	products := make([]Product, 0, len(raw))
	for i, r := range raw {
		products = append(products, normalizeOne(r, i))
	}
	return products
}

func normalizeOne(r RawProduct, index int) Product {
	id, ok := coerceString(r.ID)
	if !ok {
		if id, ok = coerceString(r.AltID); !ok {
			id = fmt.Sprintf("p-%d", index)
		}
	}

	price, ok := coerceNumber(r.Price)
	if !ok {
		// Strip currency symbols and separators and retry.
		cleaned := nonNumericRe.ReplaceAllString(stringify(r.Price), "")
		price, ok = parseFinite(cleaned)
		if !ok {
			price = 0
		}
	}

	pop, ok := coerceNumber(r.PopularityOutOf5)
	if !ok {
		if score, scoreOK := coerceNumber(r.PopularityScore); scoreOK {
			pop, ok = score*5, true
		}
	}
	if !ok {
		pop = 0
	}

	score, _ := coerceNumber(r.PopularityScore)
	weight, _ := coerceNumber(r.Weight)

	return Product{
		ID:               id,
		Name:             r.Name,
		PopularityScore:  score,
		Weight:           weight,
		Images:           normalizeImages(r.Images),
		Price:            price,
		PopularityOutOf5: pop,
	}
}

// normalizeImages returns the value as a variant→URL mapping, wrapping
// anything that is not already a mapping under a "default" key.
func normalizeImages(v any) map[string]string {
	if m, ok := v.(map[string]any); ok {
		images := make(map[string]string, len(m))
		for key, val := range m {
			images[key] = stringify(val)
		}
		return images
	}
	if v == nil {
		return map[string]string{"default": ""}
	}
	return map[string]string{"default": stringify(v)}
}

// coerceNumber converts a loosely typed JSON value to a finite float64.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		return parseFinite(n)
	default:
		return 0, false
	}
}

// parseFinite parses a string as a finite float64.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceString converts a JSON value to its string form, rejecting nil.
func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		if s == "" {
			return "", false
		}
		return s, true
	default:
		return stringify(v), true
	}
}

// stringify renders a JSON value the way a template would.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
