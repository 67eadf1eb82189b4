package view

import (
	"math"
	"strconv"
)

// FormatNumber renders a value with a fixed number of decimals for
// display. Non-finite values render as zero so the view never shows NaN.
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// StarFill reports the filled fraction of a 5-star rating in [0,1].
func StarFill(ratingOutOf5 float64) float64 {
	f := ratingOutOf5 / 5
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
