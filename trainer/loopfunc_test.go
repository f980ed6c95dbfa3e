package trainer_test

import "context"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "go.uber.org/zap/zaptest"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/datasets/xor"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/trainer"
import "github.com/neurlang/counterprop/trainer/instar"

// resumable counts iterations and hands them out on Pause.
type resumable struct {
	net     *cpn.Network
	n       int
	resumed *trainer.Continuation
}

func (r *resumable) Method() *cpn.Network           { return r.net }
func (r *resumable) CanContinue() bool              { return true }
func (r *resumable) Error() float64                 { return 1 }
func (r *resumable) Iteration() error               { r.n++; return nil }
func (r *resumable) Pause() *trainer.Continuation   { return &trainer.Continuation{Iteration: r.n} }
func (r *resumable) Resume(c *trainer.Continuation) { r.resumed = c }
func (r *resumable) LearningRate() float64          { return 0 }
func (r *resumable) SetLearningRate(float64)        {}

func TestLoopStopsAtTarget(t *testing.T) {
	net := cpn.MustNew(xor.Inputs, xor.Classes)
	net.SetActivation(cpn.NegativeDistance)
	tr := instar.New(net, xor.Dataset(), 0.3, true)

	o, err := trainer.NewLoopFunc(tr, trainer.Strategy{MaxIterations: 10}, zaptest.NewLogger(t))(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trainer.StopTarget, o.Reason)
	assert.Equal(t, 1, o.Iterations)
	assert.Equal(t, 0.0, o.Error)
}

func TestLoopStopsAtIterationLimitAndDecays(t *testing.T) {
	net := cpn.MustNew(1, 1)
	tr := instar.New(net, datasets.FromInputs([][]float64{{0}, {10}}), 0.5, false)

	o, err := trainer.NewLoopFunc(tr, trainer.Strategy{MaxIterations: 3, RateDecay: 0.5}, nil)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trainer.StopMaxIterations, o.Reason)
	assert.Equal(t, 3, o.Iterations)
	assert.Equal(t, tr.Error(), o.Error)
	// decayed after the first two iterations only
	assert.Equal(t, 0.125, tr.LearningRate())
}

func TestLoopCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := instar.New(cpn.MustNew(1, 1), datasets.FromInputs([][]float64{{1}}), 0.5, false)
	o, err := trainer.NewLoopFunc(tr, trainer.Strategy{}, nil)(ctx)
	require.NoError(t, err)
	assert.Equal(t, trainer.StopCanceled, o.Reason)
	assert.Equal(t, 0, o.Iterations)
	assert.Nil(t, o.Continuation)
	assert.Equal(t, "canceled", o.Reason.String())
}

func TestLoopCanceledResumable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &resumable{net: cpn.MustNew(1, 1)}

	loop := trainer.NewLoopFunc(r, trainer.Strategy{MaxIterations: 2}, nil)
	o, err := loop(ctx)
	require.NoError(t, err)
	assert.Equal(t, trainer.StopMaxIterations, o.Reason)

	cancel()
	o, err = loop(ctx)
	require.NoError(t, err)
	assert.Equal(t, trainer.StopCanceled, o.Reason)
	require.NotNil(t, o.Continuation)
	assert.Equal(t, 2, o.Continuation.Iteration)
}

func TestLoopFailsOnMismatch(t *testing.T) {
	tr := instar.New(cpn.MustNew(2, 3), xor.Dataset(), 0.5, true)
	o, err := trainer.NewLoopFunc(tr, trainer.Strategy{MaxIterations: 5}, nil)(context.Background())
	assert.True(t, errors.Is(err, instar.ErrConfigurationMismatch))
	assert.Equal(t, trainer.StopFailed, o.Reason)
	assert.Equal(t, 0, o.Iterations)
}
