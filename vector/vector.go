// Package vector implements the float64 kernels used by instar competition: dot product,
// Euclidean distance and the winner scan.
//
// Sums are accumulated strictly left to right on every platform, so activations,
// distances and therefore winners are bit-identical across machines.
package vector

import "math"

// Dot returns the dot product of a and b. Both must have the same length.
func Dot(a, b []float64) (s float64) {
	b = b[:len(a)]
	for i, x := range a {
		s += x * b[i]
	}
	return
}

// Distance returns the Euclidean distance between a and b. Both must have the same length.
func Distance(a, b []float64) float64 {
	b = b[:len(a)]
	var s float64
	for i, x := range a {
		d := x - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// ArgMax returns the index of the largest value in v, or -1 when v is empty.
//
// The scan is linear with a strict > comparison, so on a tie the lowest index wins.
// A NaN never wins over a number.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] || (math.IsNaN(v[best]) && !math.IsNaN(v[i])) {
			best = i
		}
	}
	return best
}
