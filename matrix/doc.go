// Package matrix provides a minimal dense-matrix container with row- and
// column-vector specializations.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage addressed as row*stride + col, with
//     Dims, At, Set, Copy and a deterministic debug rendering.
//   - RowVector / ColVector: a Dense pinned to one row or one column.
//   - Capability interfaces (Dimensioner, Accessor, Copier, Container,
//     Matrix) so generic code can accept any of the three.
//   - Render with functional options, Equal, and gonum interop
//     (AsGonum, FromGonum).
//
// There is no arithmetic here: no addition, multiplication, transpose
// computation or decomposition. Hand the data to gonum via AsGonum for that.
//
// Reads and writes fail differently. At on a missing coordinate returns an
// error wrapping ErrIndexOutOfBounds; Set on a missing coordinate does
// nothing. Constructors panic when the data length disagrees with the
// requested shape.
//
// None of the types lock internally; share an instance across goroutines
// only under your own synchronization.
//
// See example_test.go for usage patterns.
package matrix
