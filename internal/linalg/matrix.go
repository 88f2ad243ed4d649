package linalg

// Matrix is an owned, row-major dense buffer of RowCount x ColumnCount
// doubles. Element (i,j) lives at Data[i*ColumnCount+j].
type Matrix struct {
	RowCount    int
	ColumnCount int
	Data        []float64
}

// NewMatrix allocates a zero-filled Matrix of the given dimensions.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{RowCount: rows, ColumnCount: cols, Data: make([]float64, rows*cols)}
}

// Zero resets every element to 0.
func (m *Matrix) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

// At returns element (i,j).
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.ColumnCount+j]
}

// Set assigns element (i,j).
func (m *Matrix) Set(i, j int, val float64) {
	m.Data[i*m.ColumnCount+j] = val
}

// RowView returns row i as a contiguous slice sharing m's backing array.
func (m *Matrix) RowView(i int) []float64 {
	start := i * m.ColumnCount
	return m.Data[start : start+m.ColumnCount]
}

// ColumnPtr returns the backing slice starting at column j of row 0, along
// with the stride (ColumnCount) needed to walk that column down the rows:
// an explicit (slice, stride) pair standing in for raw pointer aliasing.
func (m *Matrix) ColumnPtr(j int) (data []float64, stride int) {
	return m.Data[j:], m.ColumnCount
}
