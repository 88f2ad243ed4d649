package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixAtSet(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 2, 9)
	assert.Equal(t, 9.0, m.At(1, 2))
}

func TestMatrixRowView(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 0, 1)
	m.Set(1, 1, 2)
	m.Set(1, 2, 3)
	assert.Equal(t, []float64{1, 2, 3}, m.RowView(1))
}

func TestMatrixColumnPtr(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 1, 10)
	m.Set(1, 1, 20)
	data, stride := m.ColumnPtr(1)
	assert.Equal(t, 2, stride)
	assert.Equal(t, 10.0, data[0])
	assert.Equal(t, 20.0, data[stride])
}
