// Package view holds the client-side view state for the catalog browser:
// per-card color and carousel state, list paging, and the color-variant
// helpers. Everything here is a pure transformation, independent of the
// rendering framework.
package view

import "strings"

// colorPriority fixes the display order of recognized variant keywords.
var colorPriority = []string{"yellow", "white", "rose", "pink"}

// Swatch palette, keyed by recognized variant keyword.
const (
	swatchYellow  = "#E6CA97"
	swatchWhite   = "#D9D9D9"
	swatchRose    = "#E1A4A9"
	swatchUnknown = "#BBBBBB"
	swatchEmpty   = "#DDDDDD"
)

// OrderColorKeys reorders variant keys into the fixed priority order
// (yellow, white, rose/pink), appending unrecognized keys in encounter
// order. Matching is case-insensitive substring; a key matching several
// keywords lands in the first matching slot only.
func OrderColorKeys(keys []string) []string {
	buckets := make([][]string, len(colorPriority))
	var others []string

	for _, key := range keys {
		low := strings.ToLower(key)
		idx := -1
		for i, keyword := range colorPriority {
			if strings.Contains(low, keyword) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			buckets[idx] = append(buckets[idx], key)
		} else {
			others = append(others, key)
		}
	}

	ordered := make([]string, 0, len(keys))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket...)
	}
	return append(ordered, others...)
}

// SwatchColor returns the hex color for a variant key's swatch.
func SwatchColor(key string) string {
	if key == "" {
		return swatchEmpty
	}
	low := strings.ToLower(key)
	switch {
	case strings.Contains(low, "yellow"):
		return swatchYellow
	case strings.Contains(low, "white"):
		return swatchWhite
	case strings.Contains(low, "rose"), strings.Contains(low, "pink"):
		return swatchRose
	default:
		return swatchUnknown
	}
}

// ColorDisplayName maps a variant key to a human-readable label.
// Unrecognized keys pass through with underscores replaced by spaces.
func ColorDisplayName(key string) string {
	if key == "" {
		return ""
	}
	low := strings.ToLower(key)
	switch {
	case strings.Contains(low, "yellow"):
		return "Yellow Gold"
	case strings.Contains(low, "white"):
		return "White Gold"
	case strings.Contains(low, "rose"), strings.Contains(low, "pink"):
		return "Rose Gold"
	default:
		return strings.ReplaceAll(key, "_", " ")
	}
}
