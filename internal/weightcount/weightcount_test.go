package weightcount

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rnntrain/internal/activation"
	"rnntrain/internal/network"
)

// Matches concrete scenario 5's topology: layer 0 recurrent, 2 inputs,
// 3 nodes; layer 1 non-recurrent, 1 node. Total = (3*2)+(3*3)+3 + (1*3)+1 = 22.
func TestGetWeightCountRecurrentAndFeedForward(t *testing.T) {
	specs := []network.LayerSpec{
		{NodeCount: 3, IsRecurrent: true, ActivationType: activation.PureLin},
		{NodeCount: 1, IsRecurrent: false, ActivationType: activation.PureLin},
	}
	assert.Equal(t, 22, GetWeightCount(specs, 2))
}

func TestGetWeightCountSingleLayer(t *testing.T) {
	specs := []network.LayerSpec{
		{NodeCount: 1, IsRecurrent: false, ActivationType: activation.PureLin},
	}
	assert.Equal(t, 3, GetWeightCount(specs, 2))
}

func TestGetWeightCountNoLayers(t *testing.T) {
	assert.Equal(t, 0, GetWeightCount(nil, 5))
}
