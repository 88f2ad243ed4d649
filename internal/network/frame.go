package network

import "rnntrain/internal/linalg"

// LayerScratch holds one layer's per-time-step scratch vectors: the input
// actually consumed (x), the pre-activation (a), the post-activation
// output (z), and the backpropagated delta (d). These are private to the
// (Frame, layer) pair.
type LayerScratch struct {
	X *linalg.Vector
	A *linalg.Vector
	Z *linalg.Vector
	D *linalg.Vector
}

// Frame is the ordered sequence of per-layer scratch for one time step.
type Frame struct {
	Layers []*LayerScratch
}

// NewFrame allocates fresh, zeroed scratch vectors sized from bundle.
func NewFrame(bundle *Bundle) *Frame {
	f := &Frame{Layers: make([]*LayerScratch, bundle.NumLayers())}
	for l, lw := range bundle.Layers {
		f.Layers[l] = &LayerScratch{
			X: linalg.NewVector(lw.InputCount),
			A: linalg.NewVector(lw.Spec.NodeCount),
			Z: linalg.NewVector(lw.Spec.NodeCount),
			D: linalg.NewVector(lw.Spec.NodeCount),
		}
	}
	return f
}
