package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsCSV(t *testing.T) {
	rows, err := ParseRowsCSV(strings.NewReader("1,0,0\n0,1,0\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, rows)
}

func TestParseRowsCSVWrongWidth(t *testing.T) {
	_, err := ParseRowsCSV(strings.NewReader("1,0\n"), 3)
	assert.Error(t, err)
}

func TestParseRowsCSVEmpty(t *testing.T) {
	rows, err := ParseRowsCSV(strings.NewReader(""), 3)
	require.NoError(t, err)
	assert.Nil(t, rows)
}
