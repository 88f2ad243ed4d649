package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrainingCSV(t *testing.T) {
	data, err := ParseTrainingCSV(strings.NewReader("in1,in2,target\n3,4,7\n1,2,3\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, data.Input.RowCount)
	assert.Equal(t, 2, data.Input.ColumnCount)
	assert.Equal(t, 3.0, data.Input.At(0, 0))
	assert.Equal(t, 4.0, data.Input.At(1, 0))
	assert.Equal(t, 1.0, data.Input.At(0, 1))
	assert.Equal(t, []float64{7, 3}, data.Output.Data)
}

func TestParseTrainingCSVMissingTargetColumn(t *testing.T) {
	_, err := ParseTrainingCSV(strings.NewReader("in1,in2\n3,4\n"))
	assert.Error(t, err)
}

func TestParseTrainingCSVMalformedRow(t *testing.T) {
	_, err := ParseTrainingCSV(strings.NewReader("in1,target\n3,4\nnotanumber,5\n"))
	assert.Error(t, err)
}

func TestParseTrainingCSVWrongFieldCount(t *testing.T) {
	_, err := ParseTrainingCSV(strings.NewReader("in1,in2,target\n3,4,5,6\n"))
	assert.Error(t, err)
}
