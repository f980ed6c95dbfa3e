// Package instar implements competitive (winner-take-all) unsupervised training of the
// instar weights of a counter-propagation network.
//
// Each Iteration makes one online pass over the corpus: for every exemplar the most
// activated unit wins, and only the winner's weight column moves toward the exemplar
// by the learning rate. The iteration error is the worst exemplar to winner distance
// seen during the pass.
package instar

import "math"

import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/trainer"
import "github.com/neurlang/counterprop/vector"

// Trainer is the instar training engine. It is not safe for concurrent use, and
// nothing else may write the network weights while it runs.
type Trainer struct {
	net          *cpn.Network
	corpus       datasets.Corpus
	learningRate float64
	mustInit     bool
	err          float64
	iterations   int
	log          *zap.Logger

	// scratch buffers reused across exemplars
	activation []float64
	column     []float64
}

var _ trainer.Trainer = (*Trainer)(nil)

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(t *Trainer) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates an instar trainer for net over corpus. When mustInit is set, the first
// Iteration seeds weight column i with the input of exemplar i, which requires
// exactly one exemplar per instar unit. The learning rate is not validated; rates
// outside (0, 1] are the caller's choice.
func New(net *cpn.Network, corpus datasets.Corpus, learningRate float64, mustInit bool, opts ...Option) *Trainer {
	t := &Trainer{
		net:          net,
		corpus:       corpus,
		learningRate: learningRate,
		mustInit:     mustInit,
		err:          math.NaN(),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Method returns the network being trained.
func (t *Trainer) Method() *cpn.Network {
	return t.net
}

// CanContinue is always false: instar training keeps no state worth checkpointing
// besides the weights, which the network already holds.
func (t *Trainer) CanContinue() bool {
	return false
}

// Pause returns nil, the trainer is not resumable.
func (t *Trainer) Pause() *trainer.Continuation {
	return nil
}

// Resume does nothing.
func (t *Trainer) Resume(*trainer.Continuation) {}

// LearningRate returns the rate used by the next iteration.
func (t *Trainer) LearningRate() float64 {
	return t.learningRate
}

// SetLearningRate changes the learning rate from the next iteration on.
func (t *Trainer) SetLearningRate(rate float64) {
	t.learningRate = rate
}

// Error returns the worst exemplar to winner distance of the last iteration. It is
// NaN before the first iteration and -Inf after an iteration over an empty corpus.
func (t *Trainer) Error() float64 {
	return t.err
}

// Iterations returns the number of completed iterations.
func (t *Trainer) Iterations() int {
	return t.iterations
}

// Initialized reports whether the weights no longer need to be seeded.
func (t *Trainer) Initialized() bool {
	return !t.mustInit
}

// Iteration performs one online training pass over the corpus. An error means the
// configuration or the data is wrong; the weights are unchanged in that case.
func (t *Trainer) Iteration() error {
	if t.mustInit {
		if err := t.initializeWeights(); err != nil {
			return err
		}
	}
	if err := t.checkCorpus(); err != nil {
		return err
	}

	var weights = t.net.Weights()
	var worst = math.Inf(-1)
	if len(t.activation) != t.net.InstarCount() {
		t.activation = make([]float64, t.net.InstarCount())
	}

	for i := 0; i < t.corpus.Len(); i++ {
		input := t.corpus.At(i).Input

		if err := t.net.ComputeInstarInto(input, t.activation); err != nil {
			return errors.Wrapf(err, "exemplar %d", i)
		}
		winner := vector.ArgMax(t.activation)

		t.column = weights.Column(winner, t.column)
		worst = math.Max(worst, vector.Distance(input, t.column))

		// (1-rate)*w + rate*x keeps both ends exact: rate 0 leaves w, rate 1 yields x
		for j, x := range input {
			weights.Set(j, winner, (1-t.learningRate)*t.column[j]+t.learningRate*x)
		}
	}

	t.err = worst
	t.iterations++
	t.log.Debug("instar iteration",
		zap.Int("iteration", t.iterations),
		zap.Float64("error", worst),
		zap.Float64("learning_rate", t.learningRate),
		zap.Int("exemplars", t.corpus.Len()))
	return nil
}

// initializeWeights seeds weight column i with the input of exemplar i. Nothing is
// written unless the corpus has one exemplar of the right shape per instar unit.
func (t *Trainer) initializeWeights() error {
	var weights = t.net.Weights()
	if t.corpus.Len() != weights.Cols() {
		return errors.Wrapf(ErrConfigurationMismatch, "%d exemplars for %d instar units",
			t.corpus.Len(), weights.Cols())
	}
	if err := t.checkCorpus(); err != nil {
		return err
	}
	for i := 0; i < t.corpus.Len(); i++ {
		if err := weights.SetColumn(i, t.corpus.At(i).Input); err != nil {
			return errors.Wrapf(err, "exemplar %d", i)
		}
	}
	t.mustInit = false
	t.log.Info("instar weights seeded from corpus", zap.Int("units", weights.Cols()))
	return nil
}

func (t *Trainer) checkCorpus() error {
	var weights = t.net.Weights()
	for i := 0; i < t.corpus.Len(); i++ {
		if err := weights.CheckInput(t.corpus.At(i).Input); err != nil {
			return errors.Wrapf(err, "exemplar %d", i)
		}
	}
	return nil
}
