package utils

import (
	"math"
)

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Midpoint returns a point halfway between lo and hi without overflowing for values near the
// float64 range limits.
func Midpoint(lo, hi float64) float64 {
	return lo*0.5 + hi*0.5
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
