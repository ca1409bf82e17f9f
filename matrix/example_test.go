package matrix_test

import (
	"errors"
	"fmt"

	"github.com/youssefhakam/AlgMath/matrix"
)

// ExampleNewDense builds a 2×3 matrix, reads one cell and prints it.
func ExampleNewDense() {
	m := matrix.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	r, c := m.Dims()
	v, _ := m.At(1, 2)

	fmt.Print(m)
	fmt.Println(r, c, v)
	// Output:
	// Matrix (2x3):
	// [ 1, 2, 3 ]
	// [ 4, 5, 6 ]
	// 2 3 6
}

// ExampleDense_At shows the read/write asymmetry: a missing cell is an error
// on read and a no-op on write.
func ExampleDense_At() {
	m := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := m.At(2, 0)
	fmt.Println(errors.Is(err, matrix.ErrIndexOutOfBounds))
	fmt.Println(err)

	m.Set(2, 0, 99) // ignored
	fmt.Print(m)
	// Output:
	// true
	// Dense.At(2,0): matrix: index out of bounds
	// Matrix (2x2):
	// [ 1, 2 ]
	// [ 3, 4 ]
}

// ExampleDense_Copy demonstrates that copies never share storage.
func ExampleDense_Copy() {
	a := matrix.NewDense(1, 2, []float64{1, 2})
	b := a.Copy()
	b.Set(0, 0, 999)

	x, _ := a.At(0, 0)
	y, _ := b.At(0, 0)
	fmt.Println(x, y)
	// Output:
	// 1 999
}

// ExampleNewRowVector prints a row vector and its shape.
func ExampleNewRowVector() {
	v := matrix.NewRowVector(3, []float64{1, 2, 3})
	fmt.Print(v)
	fmt.Println(v.Dims())
	// Output:
	// RowVector: Matrix (1x3):
	// [ 1, 2, 3 ]
	// 1 3
}

// ExampleNewColVector prints a column vector and its shape.
func ExampleNewColVector() {
	v := matrix.NewColVector(3, []float64{4, 5, 6})
	fmt.Print(v)
	fmt.Println(v.Dims())
	// Output:
	// ColVector: Matrix (3x1):
	// [ 4 ]
	// [ 5 ]
	// [ 6 ]
	// 3 1
}

// ExampleRender formats with a fixed precision and a custom label.
func ExampleRender() {
	m := matrix.NewDense(1, 2, []float64{0.5, 2})
	fmt.Print(matrix.Render(m, matrix.WithPrefix("weights: "), matrix.WithPrecision(2)))
	// Output:
	// weights: Matrix (1x2):
	// [ 0.50, 2.00 ]
}
