package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuePureLinIsIdentity(t *testing.T) {
	assert.Equal(t, 2.5, Value(PureLin, 2.5))
}

func TestValueLogSig(t *testing.T) {
	assert.InDelta(t, 1/(1+math.Exp(-0.5)), Value(LogSig, 0.5), 1e-12)
}

func TestDerivativePureLinIsOne(t *testing.T) {
	assert.Equal(t, 1.0, Derivative(PureLin, 42))
}

func TestDerivativeLogSig(t *testing.T) {
	s := Value(LogSig, 0.5)
	assert.InDelta(t, s*(1-s), Derivative(LogSig, 0.5), 1e-12)
}
