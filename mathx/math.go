package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lower, upper].
func Clamp[T constraints.Ordered](v, lower, upper T) T {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// NonNeg returns v, or 0 if v is negative.
func NonNeg[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

func RoundPlaces(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
