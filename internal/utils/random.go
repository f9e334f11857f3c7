package utils

import "math/rand"

// RandomFloat returns a random float64 in [0.0, 1.0).
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game fairness randomness, not security critical
}
