// Package datasets implements the training corpus consumed by counter-propagation trainers
package datasets

import "github.com/pkg/errors"

// ErrEmpty is returned when a corpus with no exemplars is built from an empty source.
var ErrEmpty = errors.New("empty corpus")

// Pair is one training exemplar. Ideal is carried for supervised trainers and is
// never read by unsupervised ones.
type Pair struct {
	Input []float64
	Ideal []float64
}

// Corpus is an ordered, finite sequence of pairs which can be replayed any number of times.
type Corpus interface {

	// Len returns the number of pairs.
	Len() int

	// At returns the i-th pair in corpus order.
	At(i int) Pair
}

// Slice is the in-memory corpus.
type Slice []Pair

// Len returns the number of pairs.
func (s Slice) Len() int {
	return len(s)
}

// At returns the i-th pair.
func (s Slice) At(i int) Pair {
	return s[i]
}

// FromInputs builds an unsupervised corpus from input vectors, with nil ideals.
func FromInputs(inputs [][]float64) Slice {
	o := make(Slice, len(inputs))
	for i, in := range inputs {
		o[i] = Pair{Input: in}
	}
	return o
}

// Inputs collects the input vectors of a corpus in order. The vectors are shared, not copied.
func Inputs(c Corpus) [][]float64 {
	o := make([][]float64, c.Len())
	for i := range o {
		o[i] = c.At(i).Input
	}
	return o
}

// Width returns the common input length of a non-empty corpus, or an error naming
// the first pair which differs.
func Width(c Corpus) (int, error) {
	if c.Len() == 0 {
		return 0, ErrEmpty
	}
	w := len(c.At(0).Input)
	for i := 1; i < c.Len(); i++ {
		if n := len(c.At(i).Input); n != w {
			return 0, errors.Errorf("pair %d has input length %d, pair 0 has %d", i, n, w)
		}
	}
	return w, nil
}
