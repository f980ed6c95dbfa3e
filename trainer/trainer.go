package trainer

import "github.com/neurlang/counterprop/net/cpn"

// Trainer is an iterative trainer driven by a host loop. Each Iteration is one full
// pass over the training corpus.
type Trainer interface {

	// Method returns the network being trained.
	Method() *cpn.Network

	// CanContinue reports whether Pause returns a token that Resume can restart from.
	CanContinue() bool

	// Error returns the error of the last completed iteration.
	Error() float64

	// Iteration performs one training pass. A returned error is fatal.
	Iteration() error

	// Pause returns a continuation token, nil when the trainer is not resumable.
	Pause() *Continuation

	// Resume restarts from a token returned by Pause.
	Resume(*Continuation)

	// LearningRate returns the rate used by the next iteration.
	LearningRate() float64

	// SetLearningRate changes the rate; it applies from the next iteration.
	SetLearningRate(rate float64)
}

// Continuation is the token a resumable trainer hands out on Pause. Trainers which
// are not resumable report CanContinue false and return a nil Continuation.
type Continuation struct {
	Iteration int
}
