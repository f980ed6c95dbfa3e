package datasets

import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"

func TestSliceCorpus(t *testing.T) {
	c := FromInputs([][]float64{{1, 0}, {0, 1}})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []float64{0, 1}, c.At(1).Input)
	assert.Nil(t, c.At(1).Ideal)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, Inputs(c))
}

func TestWidth(t *testing.T) {
	w, err := Width(FromInputs([][]float64{{1, 0, 2}, {0, 1, 3}}))
	assert.NoError(t, err)
	assert.Equal(t, 3, w)

	_, err = Width(Slice{})
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Width(FromInputs([][]float64{{1, 0}, {0}}))
	assert.Error(t, err)
}
