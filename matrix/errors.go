// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and panic messages.
// Public indexers return ErrIndexOutOfBounds wrapped with call-site context;
// callers and tests match it via errors.Is. Panics are reserved for
// programmer errors (broken construction contracts, nonsensical options).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Sentinels are wrapped once, at the detection site, with the receiver type,
// method and coordinates: "Dense.At(3,0): matrix: index out of bounds".

// ErrIndexOutOfBounds indicates that a row or column index lies outside the
// extent of a Dense, RowVector or ColVector. Only reads report it; writes
// outside the extent are discarded without an error.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ---------- Panic messages (no magic strings) ----------

const (
	panicNegativeDims     = "matrix: NewDense: dimensions must be non-negative"
	panicShapeOverflow    = "matrix: NewDense: rows*cols overflows int"
	panicDataLength       = "matrix: NewDense: data length must match dimensions"
	panicVectorLength     = "matrix: vector: data length must match the specified size"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicFormatInvalid    = "matrix: WithFloatFormat: format must be one of 'f', 'g', 'e'"
	panicGonumNil         = "matrix: FromGonum: nil source matrix"
)

// ---------- error context tags ----------

const (
	ctxDenseAt = "Dense.At"     // Dense read
	ctxRowAt   = "RowVector.At" // RowVector read
	ctxColAt   = "ColVector.At" // ColVector read
)

// indexErrorf wraps ErrIndexOutOfBounds with the method tag and coordinates.
// Complexity: O(1).
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
}
