package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/youssefhakam/AlgMath/matrix"
)

// TestAsGonumLayout cross-checks our row-major layout against gonum's own Dense.
func TestAsGonumLayout(t *testing.T) {
	t.Parallel()

	data := seq(6)
	m := matrix.NewDense(2, 3, data)
	g := matrix.AsGonum(m)

	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.Equal(g, mat.NewDense(2, 3, seq(6))))
}

// TestAsGonumSharesStorage verifies the view reads the live source.
func TestAsGonumSharesStorage(t *testing.T) {
	t.Parallel()

	v := matrix.NewRowVector(3, []float64{1, 2, 3})
	g := matrix.AsGonum(v)
	v.Set(0, 1, 20)
	assert.Equal(t, 20.0, g.At(0, 1))
}

// TestAsGonumPanicsOutOfRange follows gonum's At convention.
func TestAsGonumPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	g := matrix.AsGonum(matrix.NewDense(2, 2, seq(4)))
	require.PanicsWithValue(t, mat.ErrRowAccess, func() { g.At(2, 0) })
	require.PanicsWithValue(t, mat.ErrColAccess, func() { g.At(0, -1) })
}

// TestAsGonumTransposeView checks T() is gonum's implicit view.
func TestAsGonumTransposeView(t *testing.T) {
	t.Parallel()

	g := matrix.AsGonum(matrix.NewDense(2, 3, seq(6)))
	tr := g.T()
	require.IsType(t, mat.Transpose{}, tr)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, tr.At(2, 1))
	assert.True(t, mat.Equal(g, tr.T()))
}

// TestFromGonumCopies verifies FromGonum produces an owned, contiguous Dense.
func TestFromGonumCopies(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(3, 2, seq(6))
	m := matrix.FromGonum(src)

	assert.Equal(t, 2, m.Stride())
	requireCells(t, m, seq(6))

	src.Set(0, 0, 100) // source mutation must not leak
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	assert.True(t, matrix.Equal(m, matrix.FromGonum(matrix.AsGonum(m))))
}

// TestFromGonumNilPanics ensures nil is a programmer error.
func TestFromGonumNilPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: FromGonum: nil source matrix", func() { matrix.FromGonum(nil) })
}
