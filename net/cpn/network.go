// Package cpn implements the instar side of a counter-propagation network
package cpn

import "github.com/pkg/errors"

import "github.com/neurlang/counterprop/matrix"
import "github.com/neurlang/counterprop/vector"

// Network owns the input to instar weight matrix. Rows are input dimensions, columns
// are the competitive (instar) units. Trainers receive the matrix by pointer and
// mutate it in place; its dimensions never change.
type Network struct {
	weights    *matrix.Matrix
	activation Activation
}

// New creates a network with inputCount inputs and instarCount competitive units,
// all weights zero, computing activations by dot product.
func New(inputCount, instarCount int) (*Network, error) {
	w, err := matrix.New(inputCount, instarCount)
	if err != nil {
		return nil, err
	}
	return &Network{weights: w, activation: DotProduct}, nil
}

// MustNew creates a network or panics
func MustNew(inputCount, instarCount int) *Network {
	n, err := New(inputCount, instarCount)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// InputCount returns the input vector dimension.
func (n *Network) InputCount() int {
	return n.weights.Rows()
}

// InstarCount returns the number of competitive units.
func (n *Network) InstarCount() int {
	return n.weights.Cols()
}

// Weights returns the live input to instar weight matrix, not a copy.
func (n *Network) Weights() *matrix.Matrix {
	return n.weights
}

// SetActivation replaces the instar activation. A nil activation restores DotProduct.
func (n *Network) SetActivation(a Activation) {
	if a == nil {
		a = DotProduct
	}
	n.activation = a
}

// ComputeInstar returns the activation of every instar unit for input.
func (n *Network) ComputeInstar(input []float64) ([]float64, error) {
	out := make([]float64, n.InstarCount())
	if err := n.ComputeInstarInto(input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ComputeInstarInto is ComputeInstar writing into out, which must have length InstarCount.
func (n *Network) ComputeInstarInto(input, out []float64) error {
	if err := n.weights.CheckInput(input); err != nil {
		return err
	}
	if len(out) != n.InstarCount() {
		return errors.Wrapf(matrix.ErrShape, "activation buffer of length %d, network has %d instar units", len(out), n.InstarCount())
	}
	n.activation(n.weights, input, out)
	return nil
}

// Winner returns the index of the most activated instar unit for input. Ties go to
// the lowest index.
func (n *Network) Winner(input []float64) (int, error) {
	act, err := n.ComputeInstar(input)
	if err != nil {
		return -1, err
	}
	return vector.ArgMax(act), nil
}
