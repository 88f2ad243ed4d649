package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Gemv computes y <- alpha*A*x + beta*y, where x is read from a possibly
// strided raw buffer (xStride > 1 lets x be a non-contiguous column of a
// larger matrix, e.g. a training-input time column).
func Gemv(alpha float64, a *Matrix, xData []float64, xStride int, beta float64, y *Vector) {
	ga := blas64.General{Rows: a.RowCount, Cols: a.ColumnCount, Stride: a.ColumnCount, Data: a.Data}
	xv := blas64.Vector{N: a.ColumnCount, Inc: xStride, Data: xData}
	yv := blas64.Vector{N: a.RowCount, Inc: 1, Data: y.Data}
	blas64.Implementation().Dgemv(blas.NoTrans, ga.Rows, ga.Cols, alpha, ga.Data, ga.Stride, xv.Data, xv.Inc, beta, yv.Data, yv.Inc)
}

// GemvVec is Gemv for a contiguous Vector source (stride 1).
func GemvVec(alpha float64, a *Matrix, x *Vector, beta float64, y *Vector) {
	Gemv(alpha, a, x.Data, 1, beta, y)
}

// Ger computes A <- A + alpha*x*y^T. x has length a.RowCount, y has length
// a.ColumnCount.
func Ger(alpha float64, x, y []float64, a *Matrix) {
	blas64.Implementation().Dger(a.RowCount, a.ColumnCount, alpha, x, 1, y, 1, a.Data, a.ColumnCount)
}

// Axpy computes y <- y + alpha*x, where len(y) >= len(x).
func Axpy(alpha float64, x, y []float64) {
	floats.AddScaled(y[:len(x)], alpha, x)
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// DotColumn returns the dot product of column col of a (stride
// a.ColumnCount) with b (stride 1), per spec's DotColumn macro: the
// standard sum-j Wji*dj aggregation used in BPTT's spatial/temporal error
// terms.
func DotColumn(a *Matrix, col int, b []float64) float64 {
	colData, stride := a.ColumnPtr(col)
	av := blas64.Vector{N: len(b), Inc: stride, Data: colData}
	bv := blas64.Vector{N: len(b), Inc: 1, Data: b}
	return blas64.Implementation().Ddot(av.N, av.Data, av.Inc, bv.Data, bv.Inc)
}

// Nrm2 returns the Euclidean (L2) norm of x.
func Nrm2(x []float64) float64 {
	return floats.Norm(x, 2)
}

// Scal computes x <- alpha*x in place.
func Scal(alpha float64, x []float64) {
	floats.Scale(alpha, x)
}
