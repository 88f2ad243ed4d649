// Package weightcount computes the size of the flat weight vector a
// network topology requires, without ever materializing the tensors
// themselves.
package weightcount

import "rnntrain/internal/network"

// GetWeightCount returns the number of scalars network.SetWeights and
// network.GetWeights transfer for a bundle built from specs with nInputs
// inputs: per layer, NodeCount*InputCount (W), plus NodeCount*NodeCount
// if recurrent (Wr), plus NodeCount (Bias). It sums these directly from
// the specs rather than allocating any scratch array.
func GetWeightCount(specs []network.LayerSpec, nInputs int) int {
	total := 0
	for i, spec := range specs {
		inputCount := network.InputCount(specs, i, nInputs)
		total += spec.NodeCount * inputCount
		if spec.IsRecurrent {
			total += spec.NodeCount * spec.NodeCount
		}
		total += spec.NodeCount
	}
	return total
}
