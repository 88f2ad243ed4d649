package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnntrain/internal/activation"
	"rnntrain/internal/linalg"
	"rnntrain/internal/network"
)

func singleLinearLayerContext(t *testing.T, target float64) *Context {
	t.Helper()
	specs := []network.LayerSpec{{NodeCount: 1, IsRecurrent: false, ActivationType: activation.PureLin}}
	input := linalg.NewMatrix(2, 1)
	input.Set(0, 0, 3)
	input.Set(1, 0, 4)
	output := linalg.NewVector(1)
	output.Data[0] = target

	tc, err := NewContext(specs, input, output)
	require.NoError(t, err)
	return tc
}

// Concrete scenario 1: single linear layer, one step, target equals the
// forward output — zero error, zero gradient.
func TestEvaluateWeightsSingleLinearLayerZeroError(t *testing.T) {
	tc := singleLinearLayerContext(t, 7)
	result, err := EvaluateWeights(tc, []float64{1, 1, 0})
	require.NoError(t, err)

	assert.Equal(t, []float64{7}, result.Output)
	assert.Equal(t, 0.0, result.Error)
	assert.Equal(t, []float64{0, 0, 0}, result.Gradient)
}

// Concrete scenario 2: output-error gradient, non-recurrent. err =
// target-output = -7; the GER/AXPY accumulation's alpha=-1 applied to
// that err yields +7*x per weight (the standard, non-negated
// least-squares gradient dE/dw for this linear unit).
func TestEvaluateWeightsOutputErrorGradient(t *testing.T) {
	tc := singleLinearLayerContext(t, 0)
	result, err := EvaluateWeights(tc, []float64{1, 1, 0})
	require.NoError(t, err)

	assert.Equal(t, []float64{7}, result.Output)
	assert.Equal(t, 24.5, result.Error)
	assert.Equal(t, []float64{21, 28, 7}, result.Gradient)
}

// Concrete scenario 3: two layers with sigmoid output, one step — the
// hidden layer's delta equals the column-dot of the output layer's W
// with the output delta (PURELIN hidden applies no derivative scaling).
func TestEvaluateWeightsTwoLayerSigmoidHiddenDelta(t *testing.T) {
	specs := []network.LayerSpec{
		{NodeCount: 2, IsRecurrent: false, ActivationType: activation.PureLin},
		{NodeCount: 1, IsRecurrent: false, ActivationType: activation.LogSig},
	}
	input := linalg.NewMatrix(2, 1)
	input.Set(0, 0, 0.5)
	input.Set(1, 0, -0.3)
	output := linalg.NewVector(1)
	output.Data[0] = 1

	tc, err := NewContext(specs, input, output)
	require.NoError(t, err)

	weights := []float64{
		1, 0, // hidden W row 0
		0, 1, // hidden W row 1
		0, 0, // hidden Bias
		1, 1, // output W
		0, // output Bias
	}
	_, err = EvaluateWeights(tc, weights)
	require.NoError(t, err)

	outputLayer := tc.Bundle.Layers[1]
	hiddenLayer := tc.Frames[0].Layers[0]
	outputScratch := tc.Frames[0].Layers[1]

	for i := 0; i < 2; i++ {
		expected := linalg.DotColumn(outputLayer.W, i, outputScratch.D.Data)
		assert.InDelta(t, expected, hiddenLayer.D.Data[i], 1e-12)
	}
}

func TestEvaluateWeightsDeterministic(t *testing.T) {
	tc := singleLinearLayerContext(t, 2)
	weights := []float64{0.5, -0.5, 0.1}

	r1, err := EvaluateWeights(tc, weights)
	require.NoError(t, err)
	r2, err := EvaluateWeights(tc, weights)
	require.NoError(t, err)

	assert.Equal(t, r1.Output, r2.Output)
	assert.Equal(t, r1.Error, r2.Error)
	assert.Equal(t, r1.Gradient, r2.Gradient)
}

func TestEvaluateWeightsGradientDescentDoesNotIncreaseError(t *testing.T) {
	tc := singleLinearLayerContext(t, 0)
	weights := []float64{0.2, 0.3, 0.1}

	result, err := EvaluateWeights(tc, weights)
	require.NoError(t, err)
	before := result.Error

	const eta = 1e-4
	for i := range weights {
		weights[i] -= eta * result.Gradient[i]
	}

	result, err = EvaluateWeights(tc, weights)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Error, before)
}
