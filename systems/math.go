package systems

import (
	"math"
	"math/rand"
)

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// coinSign returns -1 or +1 with equal probability.
func coinSign(rng *rand.Rand) int {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// signOf returns -1 for negative values and +1 otherwise.
func signOf(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
