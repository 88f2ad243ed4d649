package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnntrain/internal/activation"
	"rnntrain/internal/network"
)

// recurrentContext uses W=0, Wr=0.5, Bias=1 so each step's output differs
// from the last rather than settling immediately at a fixed point,
// making persistence-vs-reset behavior observable.
func recurrentContext(t *testing.T) *Context {
	t.Helper()
	specs := []network.LayerSpec{{NodeCount: 1, IsRecurrent: true, ActivationType: activation.PureLin}}
	c := NewContext(specs, 1)
	require.NoError(t, c.SetWeights([]float64{0, 0.5, 1}))
	return c
}

// Hidden state persists across calls: the second call's recurrent input
// is the first call's output, not the time-zero sentinel.
func TestPropagateInputPersistsHiddenState(t *testing.T) {
	c := recurrentContext(t)

	first, err := PropagateInput(c, []float64{0}, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.25}, first, 1e-12) // bias(1) + 0.5*sentinel(0.5)

	second, err := PropagateInput(c, []float64{0}, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.625}, second, 1e-12) // bias(1) + 0.5*first(1.25)
}

// ResetHiddenState re-seeds the recurrent layer's Z with the time-zero
// sentinel rather than continuing from the prior call's output.
func TestPropagateInputResetHiddenState(t *testing.T) {
	c := recurrentContext(t)

	_, err := PropagateInput(c, []float64{0}, true)
	require.NoError(t, err)

	out, err := PropagateInput(c, []float64{0}, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.25}, out, 1e-12) // reset again -> same as the first call
}

func TestPropagateInputWrongInputCount(t *testing.T) {
	c := recurrentContext(t)
	_, err := PropagateInput(c, []float64{0, 0}, false)
	assert.Error(t, err)
}
