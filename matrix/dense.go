// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a row-major buffer addressed through an explicit stride:
//     offset = row*stride + col.
//   - Keep reads loud (At returns ErrIndexOutOfBounds) and writes quiet
//     (Set outside the extent is discarded).
//   - Keep ownership exclusive: NewDense and Copy never alias caller storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); Dims/At/Set: O(1); Copy/Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// Dense is a concrete row-major matrix of float64 values.
//   - rows, cols hold the logical shape.
//   - data is a flat buffer of length rows*cols.
//   - stride is the distance in data between the starts of two consecutive
//     rows. It equals cols for every matrix built here; addressing goes
//     through it so that strided windows need no new formula.
//
// A Dense is not safe for concurrent use; guard a shared instance with a
// mutex of your own.
type Dense struct {
	rows, cols int       // logical shape (>= 0)
	stride     int       // elements per row step in data (>= cols)
	data       []float64 // owned row-major storage
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix            = (*Dense)(nil)
	_ Container[*Dense] = (*Dense)(nil)
	_ fmt.Stringer      = (*Dense)(nil)
)

// NewDense creates a rows×cols matrix holding data in row-major order.
// MAIN DESCRIPTION:
//   - Public constructor with a strict length contract.
//
// Implementation:
//   - Stage 1: reject negative dimensions, shapes whose element count
//     overflows int, and len(data) != rows*cols (panic).
//   - Stage 2: copy data into a freshly allocated buffer owned by the matrix.
//   - Stage 3: set stride = cols.
//
// Behavior highlights:
//   - A mismatched length is a programmer error, never a runtime condition:
//     the call panics instead of truncating or padding.
//   - Zero-sized shapes (0×N, N×0) are legal.
//   - Later changes to the caller's slice do not reach the matrix.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDense(rows, cols int, data []float64) *Dense {
	if rows < 0 || cols < 0 {
		panic(panicNegativeDims)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		panic(panicShapeOverflow)
	}
	if len(data) != rows*cols {
		panic(panicDataLength)
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   buf,
	}
}

// Dims returns the row and column counts. No side effects.
// Complexity: O(1).
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the row count.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Stride returns the number of storage slots between the starts of two
// consecutive rows.
// Complexity: O(1).
func (m *Dense) Stride() int { return m.stride }

// inBounds reports whether (row, col) addresses a stored element.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// offset maps an in-bounds coordinate to its position in data.
// Callers must check inBounds first.
func (m *Dense) offset(row, col int) int {
	return row*m.stride + col
}

// At returns the value at (row, col) or an error wrapping ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: bounds check (negative indices are out of bounds).
//   - Stage 2: load data[row*stride + col].
//
// Errors:
//   - ErrIndexOutOfBounds, wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, indexErrorf(ctxDenseAt, row, col)
	}

	return m.data[m.offset(row, col)], nil
}

// Set stores v at (row, col). A coordinate outside the matrix is ignored:
// nothing is written and nothing is reported.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	if !m.inBounds(row, col) {
		return
	}
	m.data[m.offset(row, col)] = v
}

// Copy returns a deep copy with the same rows, cols and stride and a buffer
// of its own. Mutating either matrix never affects the other.
// Complexity: O(len(data)).
func (m *Dense) Copy() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{
		rows:   m.rows,
		cols:   m.cols,
		stride: m.stride,
		data:   buf,
	}
}

// Clone is Copy returned as the Matrix interface.
// Complexity: O(len(data)).
func (m *Dense) Clone() Matrix { return m.Copy() }

// String renders the matrix for debugging:
//
//	Matrix (2x3):
//	[ 1, 2, 3 ]
//	[ 4, 5, 6 ]
//
// The output is deterministic but not meant to be parsed back.
// Complexity: O(rows*cols).
func (m *Dense) String() string { return Render(m) }
