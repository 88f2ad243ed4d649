// Package inference implements single-step propagation: a one-frame
// wrapper around the shared network model used to evaluate a trained
// network on live input, one time step at a time.
package inference

import (
	"fmt"

	"rnntrain/internal/network"
	"rnntrain/internal/weightcount"
)

// Context is a one-Frame wrapper preloaded with weights, used to
// propagate a sequence of single-step inputs. The frame is reused
// across calls, so a recurrent layer's hidden state persists from one
// PropagateInput call to the next unless ResetHiddenState is requested.
type Context struct {
	LayerSpecs []network.LayerSpec
	NumInputs  int
	Bundle     *network.Bundle
	Frame      *network.Frame
}

// NewContext builds an inference context for the given topology, with a
// zero-filled weight bundle. Call SetWeights before the first
// PropagateInput.
func NewContext(specs []network.LayerSpec, numInputs int) *Context {
	bundle := network.NewBundle(specs, numInputs)
	return &Context{
		LayerSpecs: specs,
		NumInputs:  numInputs,
		Bundle:     bundle,
		Frame:      network.NewFrame(bundle),
	}
}

// NumWeights returns the flat weight vector length this context expects.
func (c *Context) NumWeights() int {
	return weightcount.GetWeightCount(c.LayerSpecs, c.NumInputs)
}

// SetWeights loads a flat weight vector into the context's bundle.
func (c *Context) SetWeights(weights []float64) error {
	if len(weights) != c.NumWeights() {
		return fmt.Errorf("inference: expected %d weights, got %d", c.NumWeights(), len(weights))
	}
	network.SetWeights(c.Bundle, weights)
	return nil
}
