package training

import (
	"fmt"

	"rnntrain/internal/activation"
	"rnntrain/internal/linalg"
	"rnntrain/internal/network"
)

// Result is the outcome of one EvaluateWeights call.
type Result struct {
	Output   []float64 // last layer's z at the final time step
	Error    float64   // total output-layer squared error, 0.5*sum(err^2)
	Gradient []float64 // flat, codec-ordered dE/dweight; callers update w ← w − η·gradient
}

// EvaluateWeights loads weights into c's shared bundle, runs the forward
// pass over every time step, then the BPTT backward pass, and returns the
// final output, the total output error, and the loss gradient. Callers
// descend with w ← w − η·gradient.
func EvaluateWeights(c *Context, weights []float64) (Result, error) {
	if len(weights) != c.NumWeights() {
		return Result{}, fmt.Errorf("training: expected %d weights, got %d", c.NumWeights(), len(weights))
	}

	network.SetWeights(c.Bundle, weights)

	tMax := c.NumFrames - 1
	for t := 0; t <= tMax; t++ {
		colData, stride := c.Input.ColumnPtr(t)
		var prev *network.Frame
		if t > 0 {
			prev = c.Frames[t-1]
		}
		network.Propagate(c.Bundle, c.Frames[t], prev, colData, stride)
	}

	lastLayer := c.NumLayers - 1
	output := make([]float64, c.Bundle.Layers[lastLayer].Spec.NodeCount)
	copy(output, c.Frames[tMax].Layers[lastLayer].Z.Data)

	totalOutputError := backward(c, tMax)

	gradLayers := network.NewBundle(c.LayerSpecs, c.Input.RowCount)
	accumulateGradient(c, gradLayers, tMax)
	gradient := network.GetWeights(gradLayers)

	return Result{Output: output, Error: totalOutputError, Gradient: gradient}, nil
}

// backward runs the BPTT pass for t = tMax..0, l = L-1..0, filling every
// frame layer's d and returning the accumulated output-layer error.
func backward(c *Context, tMax int) float64 {
	var totalOutputError float64
	lastLayer := c.NumLayers - 1

	for t := tMax; t >= 0; t-- {
		for l := lastLayer; l >= 0; l-- {
			lw := c.Bundle.Layers[l]
			scratch := c.Frames[t].Layers[l]
			nodeCount := lw.Spec.NodeCount

			for i := 0; i < nodeCount; i++ {
				var err float64
				if l == lastLayer {
					e := c.Output.Data[t] - scratch.Z.Data[i]
					err = e
					totalOutputError += 0.5 * e * e
				} else {
					subsequent := c.Bundle.Layers[l+1]
					subsequentD := c.Frames[t].Layers[l+1].D.Data
					err = linalg.DotColumn(subsequent.W, i, subsequentD)
				}

				if t < tMax && lw.Spec.IsRecurrent {
					nextD := c.Frames[t+1].Layers[l].D.Data
					err += linalg.DotColumn(lw.Wr, i, nextD)
				}

				if lw.Spec.ActivationType == activation.LogSig {
					scratch.D.Data[i] = err * activation.Derivative(activation.LogSig, scratch.A.Data[i])
				} else {
					scratch.D.Data[i] = err
				}
			}
		}
	}
	return totalOutputError
}

// accumulateGradient folds every time step's (d, x) and (d, prevZ) pairs
// into gradLayers, following the sign convention's α = −1 in GER/AXPY.
func accumulateGradient(c *Context, gradLayers *network.Bundle, tMax int) {
	for t := 0; t <= tMax; t++ {
		for l := 0; l < c.NumLayers; l++ {
			scratch := c.Frames[t].Layers[l]
			grad := gradLayers.Layers[l]

			linalg.Ger(-1, scratch.D.Data, scratch.X.Data, grad.W)

			if grad.Spec.IsRecurrent && t > 0 {
				prevZ := c.Frames[t-1].Layers[l].Z.Data
				linalg.Ger(-1, scratch.D.Data, prevZ, grad.Wr)
			}

			linalg.Axpy(-1, scratch.D.Data, grad.Bias.Data)
		}
	}
}
