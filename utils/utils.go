package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Lerp returns the value t of the way from a to b. t is not clamped.
func Lerp(a float64, b float64, t float64) float64 {
	return a + ((b - a) * t)
}

// Clamp returns v limited to the closed range [lo, hi].
func Clamp(v float64, lo float64, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
