// Package ortho implements Gram-Schmidt orthogonalization of a vector
// against a growing set of orthonormal basis rows.
package ortho

import (
	"fmt"

	"rnntrain/internal/linalg"
)

// Context holds preallocated scratch sized for the largest basis set the
// caller will ever orthogonalize against. Pv, Bases, and Dp are reused
// across calls; Bases.RowCount and Dp.Count are logical, mutated per
// call to the basis count actually in use, never reallocated.
type Context struct {
	basisDimension int
	maxBasisCount  int

	Pv    *linalg.Vector
	Bases *linalg.Matrix
	Dp    *linalg.Vector
}

// NewContext preallocates scratch for vectors of basisDimension against
// up to maxBasisCount basis rows.
func NewContext(basisDimension, maxBasisCount int) *Context {
	return &Context{
		basisDimension: basisDimension,
		maxBasisCount:  maxBasisCount,
		Pv:             linalg.NewVector(basisDimension),
		Bases:          linalg.NewMatrix(maxBasisCount, basisDimension),
		Dp:             linalg.NewVector(maxBasisCount),
	}
}

// Orthogonalize projects p's residual component orthogonal to every row
// of orthonormalBases (numBases rows of basisDimension each, row-major),
// then unit-normalizes the residual, writing the result back into p in
// place. If the residual norm is near zero — p lies in the span of the
// bases — the result is whatever the division produces; callers are
// expected to guard against that upstream.
func Orthogonalize(c *Context, p []float64, numBases int, orthonormalBases []float64) error {
	if len(p) != c.basisDimension {
		return fmt.Errorf("ortho: expected vector of length %d, got %d", c.basisDimension, len(p))
	}
	if numBases > c.maxBasisCount {
		return fmt.Errorf("ortho: numBases %d exceeds max %d", numBases, c.maxBasisCount)
	}
	if len(orthonormalBases) != numBases*c.basisDimension {
		return fmt.Errorf("ortho: expected %d basis doubles, got %d", numBases*c.basisDimension, len(orthonormalBases))
	}

	copy(c.Pv.Data, p)
	copy(c.Bases.Data, orthonormalBases[:numBases*c.basisDimension])
	c.Bases.RowCount = numBases
	c.Dp.Count = numBases

	linalg.Gemv(1, c.Bases, c.Pv.Data, 1, 0, c.Dp)

	for i := 0; i < numBases; i++ {
		linalg.Axpy(-c.Dp.Data[i], c.Bases.RowView(i), c.Pv.Data)
	}

	mag := linalg.Nrm2(c.Pv.Data)
	linalg.Scal(1/mag, c.Pv.Data)

	copy(p, c.Pv.Data)
	return nil
}
