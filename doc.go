// Package algmath is a small numeric-container library: dense matrices and
// row/column vectors with indexed access, deep copy and debug rendering.
//
// What is in here?
//
//	matrix/   - Dense, RowVector, ColVector, capability interfaces,
//	            rendering options and gonum interop
//	examples/ - a runnable walkthrough of the matrix package
//
// Quick example:
//
//	m := matrix.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	v, err := m.At(1, 2) // 6, nil
//	_, err = m.At(2, 0)  // errors.Is(err, matrix.ErrIndexOutOfBounds)
//	m.Set(9, 9, 1)       // out of bounds: silently ignored
//	fmt.Print(m)
//
//	// Matrix (2x3):
//	// [ 1, 2, 3 ]
//	// [ 4, 5, 6 ]
//
// There is deliberately no arithmetic; pass matrix.AsGonum(m) to gonum
// when you need it.
//
//	go get github.com/youssefhakam/AlgMath
package algmath
