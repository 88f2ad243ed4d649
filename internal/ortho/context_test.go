package ortho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete scenario 6: basisDimension=3, single basis row (1,0,0),
// p=(3,4,0) -> residual (0,4,0) normalized to (0,1,0).
func TestOrthogonalizeSingleBasis(t *testing.T) {
	c := NewContext(3, 4)
	p := []float64{3, 4, 0}

	err := Orthogonalize(c, p, 1, []float64{1, 0, 0})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 1, 0}, p, 1e-12)
}

func TestOrthogonalizeResultIsUnitNorm(t *testing.T) {
	c := NewContext(2, 2)
	p := []float64{5, -2}

	err := Orthogonalize(c, p, 0, nil)
	require.NoError(t, err)

	norm := p[0]*p[0] + p[1]*p[1]
	assert.InDelta(t, 1, norm, 1e-9)
}

func TestOrthogonalizeResultIsOrthogonalToBases(t *testing.T) {
	c := NewContext(3, 4)
	p := []float64{1, 2, 3}
	bases := []float64{
		1, 0, 0,
		0, 1, 0,
	}

	err := Orthogonalize(c, p, 2, bases)
	require.NoError(t, err)

	assert.InDelta(t, 0, p[0], 1e-9)
	assert.InDelta(t, 0, p[1], 1e-9)
}

func TestOrthogonalizeWrongVectorLength(t *testing.T) {
	c := NewContext(3, 2)
	err := Orthogonalize(c, []float64{1, 2}, 0, nil)
	assert.Error(t, err)
}

func TestOrthogonalizeTooManyBases(t *testing.T) {
	c := NewContext(2, 1)
	err := Orthogonalize(c, []float64{1, 2}, 2, []float64{1, 0, 0, 1})
	assert.Error(t, err)
}
