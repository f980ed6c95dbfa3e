package trainer

import "math"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/parallel"
import "github.com/neurlang/counterprop/vector"

// Report is the quantization picture of a network over a corpus.
type Report struct {
	Worst     float64   // largest exemplar to winner distance, -Inf on an empty corpus
	Mean      float64   // mean exemplar to winner distance, NaN on an empty corpus
	Winners   []int     // winning unit of each exemplar, in corpus order
	Distances []float64 // distance of each exemplar to its winner
	Counts    []int     // number of exemplars won by each unit
}

// Dead returns the units which won no exemplar.
func (r Report) Dead() (o []int) {
	for i, c := range r.Counts {
		if c == 0 {
			o = append(o, i)
		}
	}
	return
}

// NewEvaluateFunc returns a function which evaluates the current weights of net over
// corpus without changing them. Exemplars are processed by up to workers goroutines
// (zero means one per logical core); the weights must not be trained meanwhile.
func NewEvaluateFunc(net *cpn.Network, corpus datasets.Corpus, workers int) func() (Report, error) {
	return func() (Report, error) {
		var length = corpus.Len()
		var r = Report{
			Worst:     math.Inf(-1),
			Mean:      math.NaN(),
			Winners:   make([]int, length),
			Distances: make([]float64, length),
			Counts:    make([]int, net.InstarCount()),
		}
		var errs = make([]error, length)
		parallel.ForEach(length, workers, func(i int) {
			input := corpus.At(i).Input
			winner, err := net.Winner(input)
			if err != nil {
				errs[i] = err
				return
			}
			r.Winners[i] = winner
			r.Distances[i] = vector.Distance(input, net.Weights().Column(winner, nil))
		})
		for _, err := range errs {
			if err != nil {
				return Report{}, err
			}
		}
		var sum float64
		for i, d := range r.Distances {
			r.Counts[r.Winners[i]]++
			r.Worst = math.Max(r.Worst, d)
			sum += d
		}
		if length > 0 {
			r.Mean = sum / float64(length)
		}
		return r, nil
	}
}
