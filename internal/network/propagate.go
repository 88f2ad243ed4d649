package network

import (
	"rnntrain/internal/activation"
	"rnntrain/internal/linalg"
)

// Propagate runs the forward pass of every layer in bundle for one time
// step, reading the first layer's input from inputData/inputStride (a
// possibly strided column of a larger matrix) and every subsequent
// layer's input contiguously from the previous layer's z. prev, if
// non-nil, supplies the previous frame's z vectors as the recurrent
// input; if nil, each recurrent layer falls back to its shared time-zero
// sentinel.
func Propagate(bundle *Bundle, curr, prev *Frame, inputData []float64, inputStride int) {
	in := inputData
	stride := inputStride
	for l, lw := range bundle.Layers {
		scratch := curr.Layers[l]
		propagateLayer(lw, scratch, in, stride, prevZ(prev, l))
		in = scratch.Z.Data
		stride = 1
	}
}

func prevZ(prev *Frame, layer int) []float64 {
	if prev == nil {
		return nil
	}
	return prev.Layers[layer].Z.Data
}

func propagateLayer(lw *LayerWeights, scratch *LayerScratch, inputData []float64, inputStride int, recurrentInput []float64) {
	scratch.X.SetStrided(inputData, inputStride)

	scratch.A.CopyFrom(lw.Bias)
	linalg.Gemv(1, lw.W, inputData, inputStride, 1, scratch.A)

	if lw.Spec.IsRecurrent {
		ri := recurrentInput
		if ri == nil {
			ri = lw.RecurrentZero()
		}
		linalg.Gemv(1, lw.Wr, ri, 1, 1, scratch.A)
	}

	scratch.Z.CopyFrom(scratch.A)
	if lw.Spec.ActivationType == activation.LogSig {
		z := scratch.Z.Data
		for i := range z {
			z[i] = activation.Value(activation.LogSig, z[i])
		}
	}
}
