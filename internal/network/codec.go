package network

import "rnntrain/internal/linalg"

// bundleSize returns the number of scalars SetWeights/GetWeights transfer
// for the given bundle: sum over layers of W, plus Wr if recurrent, plus
// Bias. internal/weightcount exposes the public, spec-facing equivalent
// computed directly from layer specs.
func bundleSize(bundle *Bundle) int {
	total := 0
	for _, lw := range bundle.Layers {
		total += lw.W.RowCount * lw.W.ColumnCount
		if lw.Spec.IsRecurrent {
			total += lw.Wr.RowCount * lw.Wr.ColumnCount
		}
		total += lw.Bias.Count
	}
	return total
}

// SetWeights unpacks flat into bundle's per-layer tensors in fixed
// per-layer order: W, then Wr if recurrent, then Bias. It panics if flat
// is shorter than bundleSize(bundle) requires.
func SetWeights(bundle *Bundle, flat []float64) {
	pos := 0
	for _, lw := range bundle.Layers {
		pos = unpackMatrix(lw.W, flat, pos)
		if lw.Spec.IsRecurrent {
			pos = unpackMatrix(lw.Wr, flat, pos)
		}
		pos = unpackVector(lw.Bias, flat, pos)
	}
}

// GetWeights packs bundle's per-layer tensors into a freshly allocated
// flat vector, in the same fixed order SetWeights expects.
func GetWeights(bundle *Bundle) []float64 {
	flat := make([]float64, bundleSize(bundle))
	pos := 0
	for _, lw := range bundle.Layers {
		pos = packMatrix(lw.W, flat, pos)
		if lw.Spec.IsRecurrent {
			pos = packMatrix(lw.Wr, flat, pos)
		}
		pos = packVector(lw.Bias, flat, pos)
	}
	return flat
}

func unpackMatrix(m *linalg.Matrix, flat []float64, pos int) int {
	n := m.RowCount * m.ColumnCount
	copy(m.Data, flat[pos:pos+n])
	return pos + n
}

func packMatrix(m *linalg.Matrix, flat []float64, pos int) int {
	n := m.RowCount * m.ColumnCount
	copy(flat[pos:pos+n], m.Data)
	return pos + n
}

func unpackVector(v *linalg.Vector, flat []float64, pos int) int {
	copy(v.Data, flat[pos:pos+v.Count])
	return pos + v.Count
}

func packVector(v *linalg.Vector, flat []float64, pos int) int {
	copy(flat[pos:pos+v.Count], v.Data)
	return pos + v.Count
}
