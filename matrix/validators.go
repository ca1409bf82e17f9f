// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Value comparisons between containers, independent of their storage.
//  - Pure and deterministic; nothing allocates beyond the element readers.
//
// Note:
//  - Each check follows a fixed sequence: nil → shape → elements.

package matrix

// SameShape reports whether a and b have equal Dims. Nil never matches.
// Complexity: O(1).
func SameShape(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()

	return ar == br && ac == bc
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements under ==, visited in row-major order. NaN is never equal to
// itself, so a matrix holding NaN is not Equal to its own copy.
//
// Containers of different kinds compare by value: a 1×3 Dense equals a
// RowVector of the same three elements.
// Complexity: O(rows*cols).
func Equal(a, b Matrix) bool {
	if !SameShape(a, b) {
		return false
	}
	rows, cols := a.Dims()
	atA, atB := elementReader(a), elementReader(b)

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if atA(i, j) != atB(i, j) {
				return false
			}
		}
	}

	return true
}
