package cpn

import "github.com/neurlang/counterprop/matrix"
import "github.com/neurlang/counterprop/vector"

// Activation computes out[c], the activation of instar unit c, for every column c of
// weights. The input has already been checked to have weights.Rows() elements.
type Activation func(weights *matrix.Matrix, input, out []float64)

// DotProduct activates each unit by the dot product of the input with its weight column.
// This is the conventional instar activation; no normalization is applied.
func DotProduct(weights *matrix.Matrix, input, out []float64) {
	var col []float64
	for c := range out {
		col = weights.Column(c, col)
		out[c] = vector.Dot(input, col)
	}
}

// NegativeDistance activates each unit by minus the Euclidean distance between the
// input and its weight column, so the nearest unit wins even on unnormalized data.
func NegativeDistance(weights *matrix.Matrix, input, out []float64) {
	var col []float64
	for c := range out {
		col = weights.Column(c, col)
		out[c] = -vector.Distance(input, col)
	}
}
