package inference

import (
	"fmt"

	"rnntrain/internal/network"
)

// PropagateInput runs one time step of inference: the frame's own
// current z doubles as the recurrent layers' "previous" state, giving a
// hidden state that self-loops across successive calls. Set
// resetHiddenState to true to overwrite that carried state with the
// time-zero sentinel (0.5) before propagating this step, e.g. at the
// start of a fresh sequence.
func PropagateInput(c *Context, input []float64, resetHiddenState bool) ([]float64, error) {
	if len(input) != c.NumInputs {
		return nil, fmt.Errorf("inference: expected %d inputs, got %d", c.NumInputs, len(input))
	}

	if resetHiddenState {
		for l, lw := range c.Bundle.Layers {
			if lw.Spec.IsRecurrent {
				copy(c.Frame.Layers[l].Z.Data, lw.RecurrentZero())
			}
		}
	}

	network.Propagate(c.Bundle, c.Frame, c.Frame, input, 1)

	lastLayer := len(c.Bundle.Layers) - 1
	output := make([]float64, c.Bundle.Layers[lastLayer].Spec.NodeCount)
	copy(output, c.Frame.Layers[lastLayer].Z.Data)
	return output, nil
}
