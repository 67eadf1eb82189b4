// Package service implements the pricing engine and the catalog service.
package service

// Price computes the USD price of a product from its popularity score,
// weight in grams, and the resolved gold price per gram.
//
// No rounding is applied here; display rounding is a client concern.
func Price(popularityScore, weight, goldPricePerGram float64) float64 {
	return (popularityScore + 1) * weight * goldPricePerGram
}

// RatingOutOf5 maps a popularity score in [0,1] to a 0-5 star rating.
func RatingOutOf5(popularityScore float64) float64 {
	return popularityScore * 5
}
