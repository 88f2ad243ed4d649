// Package training implements the BPTT training orchestrator:
// EvaluateWeights, the forward/backward pass over a whole training
// sequence, and gradient accumulation into the flat codec layout.
package training

import (
	"fmt"

	"rnntrain/internal/linalg"
	"rnntrain/internal/network"
	"rnntrain/internal/weightcount"
)

// Context owns the full unrolled training sequence: the shared weight
// bundle, one Frame per time step, and the input/target data the
// sequence was built from.
type Context struct {
	Input      *linalg.Matrix // nInputs x nSamples, columns are time steps
	Output     *linalg.Vector // nSamples, one scalar target per time step
	LayerSpecs []network.LayerSpec
	Bundle     *network.Bundle
	Frames     []*network.Frame
	NumLayers  int
	NumFrames  int
}

// NewContext builds a training context for the given topology and
// dataset. trainingInput must have nInputs rows and nSamples columns;
// trainingOutput must have nSamples elements. The weight bundle starts
// zero-filled; EvaluateWeights loads the caller's weights into it on
// every call.
func NewContext(specs []network.LayerSpec, trainingInput *linalg.Matrix, trainingOutput *linalg.Vector) (*Context, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("training: at least one layer is required")
	}
	if specs[len(specs)-1].NodeCount != 1 {
		return nil, fmt.Errorf("training: output layer must have NodeCount 1, got %d", specs[len(specs)-1].NodeCount)
	}
	if trainingInput.ColumnCount != trainingOutput.Count {
		return nil, fmt.Errorf("training: %d input columns but %d output samples", trainingInput.ColumnCount, trainingOutput.Count)
	}

	bundle := network.NewBundle(specs, trainingInput.RowCount)
	frames := make([]*network.Frame, trainingOutput.Count)
	for t := range frames {
		frames[t] = network.NewFrame(bundle)
	}

	return &Context{
		Input:      trainingInput,
		Output:     trainingOutput,
		LayerSpecs: specs,
		Bundle:     bundle,
		Frames:     frames,
		NumLayers:  len(specs),
		NumFrames:  len(frames),
	}, nil
}

// NumWeights returns the flat weight vector length this context expects.
func (c *Context) NumWeights() int {
	return weightcount.GetWeightCount(c.LayerSpecs, c.Input.RowCount)
}
