package trainer_test

import "math"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/matrix"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/trainer"

func TestEvaluate(t *testing.T) {
	net := cpn.MustNew(2, 3)
	require.NoError(t, net.Weights().SetColumn(0, []float64{1, 0}))
	require.NoError(t, net.Weights().SetColumn(1, []float64{0, 1}))
	require.NoError(t, net.Weights().SetColumn(2, []float64{-5, -5}))
	before := net.Weights().Clone()

	corpus := datasets.FromInputs([][]float64{{1, 0}, {0, 3}, {1, 1}})
	r, err := trainer.NewEvaluateFunc(net, corpus, 2)()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 0}, r.Winners)
	assert.Equal(t, []float64{0, 2, 1}, r.Distances)
	assert.Equal(t, []int{2, 1, 0}, r.Counts)
	assert.Equal(t, 2.0, r.Worst)
	assert.Equal(t, 1.0, r.Mean)
	assert.Equal(t, []int{2}, r.Dead())
	assert.True(t, before.Equal(net.Weights()))
}

func TestEvaluateEmptyCorpus(t *testing.T) {
	r, err := trainer.NewEvaluateFunc(cpn.MustNew(2, 2), datasets.Slice{}, 0)()
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.Worst, -1))
	assert.True(t, math.IsNaN(r.Mean))
	assert.Equal(t, []int{0, 1}, r.Dead())
}

func TestEvaluateShapeError(t *testing.T) {
	corpus := datasets.FromInputs([][]float64{{1, 0}, {1}})
	_, err := trainer.NewEvaluateFunc(cpn.MustNew(2, 2), corpus, 0)()
	assert.True(t, errors.Is(err, matrix.ErrShape))
}
