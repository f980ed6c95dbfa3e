package trainer_test

import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/trainer"

func TestResume(t *testing.T) {
	dstmodel := filepath.Join(t.TempDir(), "instar.json.br")
	saved := cpn.MustNew(2, 2)
	require.NoError(t, saved.Weights().SetColumn(1, []float64{3, 4}))
	require.NoError(t, saved.WriteCompressedWeightsToFile(dstmodel))

	net := cpn.MustNew(2, 2)
	resume := false
	require.NoError(t, trainer.Resume(net, &resume, &dstmodel))
	assert.Equal(t, []float64{0, 0}, net.Weights().Column(1, nil))

	resume = true
	require.NoError(t, trainer.Resume(net, &resume, &dstmodel))
	assert.True(t, saved.Weights().Equal(net.Weights()))

	missing := filepath.Join(t.TempDir(), "missing")
	assert.Error(t, trainer.Resume(net, &resume, &missing))
	assert.NoError(t, trainer.Resume(net, nil, nil))
}
