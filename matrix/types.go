// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces shared by Dense, RowVector and
// ColVector. There is no base type; every container carries its own storage
// and satisfies these contracts directly.
package matrix

// Dimensioner reports the logical shape of a container.
// Complexity: O(1).
type Dimensioner interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)
}

// Accessor reads and writes single elements by coordinate.
//
// The two directions fail differently:
//   - At returns an error wrapping ErrIndexOutOfBounds for a missing element.
//   - Set silently discards a write outside the extent.
type Accessor interface {
	// At returns the element at (row, col) or ErrIndexOutOfBounds.
	// Complexity: O(1).
	At(row, col int) (float64, error)

	// Set stores v at (row, col); out-of-extent writes are a no-op.
	// Complexity: O(1).
	Set(row, col int, v float64)
}

// Copier produces a deep copy with independently owned storage.
// T is the concrete container type, so copies keep their static type.
type Copier[T any] interface {
	// Copy returns an independent duplicate.
	// Complexity: O(rows*cols).
	Copy() T
}

// Container is the full capability set: shape, element access and deep copy.
// Any type implementing it can stand in for Dense, RowVector or ColVector in
// generic code.
type Container[T any] interface {
	Dimensioner
	Accessor
	Copier[T]
}

// Matrix is the non-generic form of Container, used where heterogeneous
// containers travel together (rendering, equality, gonum interop).
// Clone behaves like Copy but returns the interface type.
type Matrix interface {
	Dimensioner
	Accessor

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
