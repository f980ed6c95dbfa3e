// Package xor provides the four exemplars of the exclusive-or problem
package xor

import "github.com/neurlang/counterprop/datasets"

// Inputs is the dimension of an xor input vector.
const Inputs = 2

// Classes is the number of distinct xor inputs, one instar unit per exemplar.
const Classes = 4

// Dataset returns the xor truth table in the canonical order 00, 01, 10, 11.
func Dataset() datasets.Slice {
	return datasets.Slice{
		{Input: []float64{0, 0}, Ideal: []float64{0}},
		{Input: []float64{0, 1}, Ideal: []float64{1}},
		{Input: []float64{1, 0}, Ideal: []float64{1}},
		{Input: []float64{1, 1}, Ideal: []float64{0}},
	}
}
