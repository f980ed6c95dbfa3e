package trainer

import "context"

import "go.uber.org/zap"

// Strategy is the host side stopping criterion and learning rate schedule.
type Strategy struct {
	MaxIterations int     // stop after this many iterations, 0 for no limit
	TargetError   float64 // stop once Error() is at or below this value
	RateDecay     float64 // multiply the learning rate by this after each iteration, when in (0, 1)
}

// StopReason tells why a training loop returned.
type StopReason int

const (
	StopFailed StopReason = iota
	StopTarget
	StopMaxIterations
	StopCanceled
)

func (r StopReason) String() string {
	switch r {
	case StopTarget:
		return "target error reached"
	case StopMaxIterations:
		return "iteration limit reached"
	case StopCanceled:
		return "canceled"
	default:
		return "failed"
	}
}

// Outcome summarizes a finished training loop.
type Outcome struct {
	Iterations   int
	Error        float64
	Reason       StopReason
	Continuation *Continuation // set only when canceled and the trainer can continue
}

// NewLoopFunc returns the host training loop. It calls Iteration until the strategy is
// satisfied, ctx is done or an iteration fails. Cancellation is checked between
// iterations; a pass in progress always completes.
func NewLoopFunc(t Trainer, s Strategy, log *zap.Logger) func(ctx context.Context) (Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context) (o Outcome, err error) {
		log.Info("training started",
			zap.Float64("learning_rate", t.LearningRate()),
			zap.Int("max_iterations", s.MaxIterations),
			zap.Float64("target_error", s.TargetError))
		defer func() {
			log.Info("training stopped",
				zap.Stringer("reason", o.Reason),
				zap.Int("iterations", o.Iterations),
				zap.Float64("error", o.Error),
				zap.Error(err))
		}()
		for {
			if ctx.Err() != nil {
				o.Reason = StopCanceled
				if t.CanContinue() {
					o.Continuation = t.Pause()
				}
				return o, nil
			}
			if err = t.Iteration(); err != nil {
				o.Reason = StopFailed
				return o, err
			}
			o.Iterations++
			o.Error = t.Error()
			if o.Error <= s.TargetError {
				o.Reason = StopTarget
				return o, nil
			}
			if s.MaxIterations > 0 && o.Iterations >= s.MaxIterations {
				o.Reason = StopMaxIterations
				return o, nil
			}
			if s.RateDecay > 0 && s.RateDecay < 1 {
				t.SetLearningRate(t.LearningRate() * s.RateDecay)
				log.Debug("learning rate decayed", zap.Float64("learning_rate", t.LearningRate()))
			}
		}
	}
}
