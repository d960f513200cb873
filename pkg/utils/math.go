package utils

import "math"

// Clamp bounds v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundPercent maps a fraction in [0,1] to a whole percent.
func RoundPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}
