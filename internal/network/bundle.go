package network

import (
	"rnntrain/internal/activation"
	"rnntrain/internal/linalg"
)

// LayerWeights holds one layer's shared, owned-but-referenced weight
// tensors (W, optional Wr, Bias). Per spec.md §9, these are owned
// exclusively by the Bundle; Frames only ever hold a non-owning layer
// index into it, never a copy of the tensors themselves.
type LayerWeights struct {
	Spec       LayerSpec
	InputCount int
	W          *linalg.Matrix // NodeCount x InputCount
	Wr         *linalg.Matrix // NodeCount x NodeCount, nil unless recurrent
	Bias       *linalg.Vector // NodeCount

	// recurrentZero is the shared, read-only time-zero sentinel: a
	// NodeCount-length vector of activation.TimeZeroRecurrentInput,
	// built once here instead of allocated per call in Propagate's inner
	// loop (spec.md §9's translation note on MakeTimeZeroRecurrentInput).
	recurrentZero []float64
}

// RecurrentZero returns the shared time-zero sentinel buffer, or nil for
// non-recurrent layers.
func (lw *LayerWeights) RecurrentZero() []float64 {
	return lw.recurrentZero
}

// Bundle owns the weight tensors of every layer in a network topology.
// TrainingContext and PropagationContext each hold exactly one Bundle;
// every Frame they create shares it by layer index.
type Bundle struct {
	Layers []*LayerWeights
}

// NewBundle allocates a zero-filled weight tensor set for the given layer
// topology, per spec.md's SpecsToLayers.
func NewBundle(specs []LayerSpec, nInputs int) *Bundle {
	b := &Bundle{Layers: make([]*LayerWeights, len(specs))}
	for l, spec := range specs {
		inputCount := InputCount(specs, l, nInputs)
		lw := &LayerWeights{
			Spec:       spec,
			InputCount: inputCount,
			W:          linalg.NewMatrix(spec.NodeCount, inputCount),
			Bias:       linalg.NewVector(spec.NodeCount),
		}
		if spec.IsRecurrent {
			lw.Wr = linalg.NewMatrix(spec.NodeCount, spec.NodeCount)
			lw.recurrentZero = make([]float64, spec.NodeCount)
			for i := range lw.recurrentZero {
				lw.recurrentZero[i] = activation.TimeZeroRecurrentInput
			}
		}
		b.Layers[l] = lw
	}
	return b
}

// NumLayers returns the number of layers in the bundle.
func (b *Bundle) NumLayers() int {
	return len(b.Layers)
}
