// Package mathutil holds small numeric helpers shared by the generator packages.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Finite reports if none of the values passed are NaN or infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Abs returns the absolute value of an integer.
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
