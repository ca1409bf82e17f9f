// SPDX-License-Identifier: MIT

// Package matrix - row and column vectors.
//
// RowVector and ColVector each own exactly one *Dense pinned to a single row
// or a single column. They reject coordinates off their one axis and forward
// everything else to it; read errors carry the vector's own method tag.
// Neither is safe for concurrent use.

package matrix

import "fmt"

const (
	_rowVectorLabel = "RowVector: "
	_colVectorLabel = "ColVector: "
)

var (
	_ Matrix                = (*RowVector)(nil)
	_ Container[*RowVector] = (*RowVector)(nil)
	_ fmt.Stringer          = (*RowVector)(nil)

	_ Matrix                = (*ColVector)(nil)
	_ Container[*ColVector] = (*ColVector)(nil)
	_ fmt.Stringer          = (*ColVector)(nil)
)

// RowVector is a 1×size matrix.
type RowVector struct {
	vec *Dense // rows == 1
}

// NewRowVector builds a 1×size vector from data.
// Panics when len(data) != size or size < 0.
// Complexity: O(size).
func NewRowVector(size int, data []float64) *RowVector {
	if size < 0 || len(data) != size {
		panic(panicVectorLength)
	}

	return &RowVector{vec: NewDense(1, size, data)}
}

// Dims returns (1, size).
func (v *RowVector) Dims() (rows, cols int) { return v.vec.Dims() }

// Len returns the number of elements.
func (v *RowVector) Len() int { return v.vec.cols }

// At returns element col of the vector. Only row 0 exists; any other row,
// or col outside [0, Len()), yields ErrIndexOutOfBounds.
func (v *RowVector) At(row, col int) (float64, error) {
	if row != 0 {
		return 0, indexErrorf(ctxRowAt, row, col)
	}
	x, err := v.vec.At(0, col)
	if err != nil {
		return 0, indexErrorf(ctxRowAt, row, col)
	}

	return x, nil
}

// Set stores x at (0, col). Writes anywhere else are silently dropped.
func (v *RowVector) Set(row, col int, x float64) {
	if row != 0 {
		return
	}
	v.vec.Set(0, col, x)
}

// Copy returns a vector backed by a deep copy of the underlying matrix.
func (v *RowVector) Copy() *RowVector { return &RowVector{vec: v.vec.Copy()} }

// Clone is Copy returned as the Matrix interface.
func (v *RowVector) Clone() Matrix { return v.Copy() }

// Dense returns a deep copy of the backing matrix.
func (v *RowVector) Dense() *Dense { return v.vec.Copy() }

// String renders "RowVector: " followed by the matrix form.
func (v *RowVector) String() string { return Render(v.vec, WithPrefix(_rowVectorLabel)) }

// ColVector is a size×1 matrix.
type ColVector struct {
	vec *Dense // cols == 1
}

// NewColVector builds a size×1 vector from data.
// Panics when len(data) != size or size < 0.
// Complexity: O(size).
func NewColVector(size int, data []float64) *ColVector {
	if size < 0 || len(data) != size {
		panic(panicVectorLength)
	}

	return &ColVector{vec: NewDense(size, 1, data)}
}

// Dims returns (size, 1).
func (v *ColVector) Dims() (rows, cols int) { return v.vec.Dims() }

// Len returns the number of elements.
func (v *ColVector) Len() int { return v.vec.rows }

// At returns element row of the vector. Only column 0 exists; any other
// column, or row outside [0, Len()), yields ErrIndexOutOfBounds.
func (v *ColVector) At(row, col int) (float64, error) {
	if col != 0 {
		return 0, indexErrorf(ctxColAt, row, col)
	}
	x, err := v.vec.At(row, 0)
	if err != nil {
		return 0, indexErrorf(ctxColAt, row, col)
	}

	return x, nil
}

// Set stores x at (row, 0). Writes anywhere else are silently dropped.
func (v *ColVector) Set(row, col int, x float64) {
	if col != 0 {
		return
	}
	v.vec.Set(row, 0, x)
}

// Copy returns a vector backed by a deep copy of the underlying matrix.
func (v *ColVector) Copy() *ColVector { return &ColVector{vec: v.vec.Copy()} }

// Clone is Copy returned as the Matrix interface.
func (v *ColVector) Clone() Matrix { return v.Copy() }

// Dense returns a deep copy of the backing matrix.
func (v *ColVector) Dense() *Dense { return v.vec.Copy() }

// String renders "ColVector: " followed by the matrix form.
func (v *ColVector) String() string { return Render(v.vec, WithPrefix(_colVectorLabel)) }
