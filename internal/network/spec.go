// Package network implements the layer/frame data model, the weight codec,
// and forward propagation shared by the training and inference contexts.
package network

import "rnntrain/internal/activation"

// LayerSpec is an immutable description of one layer's topology.
type LayerSpec struct {
	NodeCount      int
	IsRecurrent    bool
	ActivationType activation.Type
}

// InputCount returns the number of inputs layer `index` consumes: the
// node count of the previous layer, or nInputs for layer 0.
func InputCount(specs []LayerSpec, index, nInputs int) int {
	if index == 0 {
		return nInputs
	}
	return specs[index-1].NodeCount
}
