// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// gonumView exposes a Matrix through gonum's read-only mat.Matrix interface.
// It shares storage with the source: later Set calls on the source are
// visible through the view.
type gonumView struct {
	src Matrix
	at  func(i, j int) float64
}

var _ mat.Matrix = gonumView{}

// AsGonum wraps m so gonum routines (mat.Formatted, mat.Equal, mat.DenseCopyOf)
// can read it without a copy. Following gonum's convention, At
// on the view panics with mat.ErrRowAccess / mat.ErrColAccess for an
// out-of-range coordinate instead of returning an error.
func AsGonum(m Matrix) mat.Matrix {
	return gonumView{src: m, at: elementReader(m)}
}

// Dims returns the source dimensions.
func (g gonumView) Dims() (r, c int) { return g.src.Dims() }

// At returns the element at (i, j).
func (g gonumView) At(i, j int) float64 {
	r, c := g.src.Dims()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}

	return g.at(i, j)
}

// T returns gonum's implicit transpose view; no data moves.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies any gonum matrix into a new row-major Dense that owns its
// storage. Panics when src is nil.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) *Dense {
	if src == nil {
		panic(panicGonumNil)
	}
	r, c := src.Dims()
	buf := make([]float64, r*c)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = src.At(i, j)
		}
	}

	return &Dense{rows: r, cols: c, stride: c, data: buf}
}
