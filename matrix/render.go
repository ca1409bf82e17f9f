// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------

const (
	_fmtHeader   = "Matrix ("
	_fmtBy       = "x"
	_fmtHeadEnd  = "):\n"
	_fmtRowOpen  = "["
	_fmtRowClose = " ]\n"
	_fmtSep      = ","
	_fmtPad      = " "
)

// Render produces the multi-line debug form of any Matrix:
//
//	<prefix>Matrix (RxC):
//	[ v00, v01, ... ]
//	[ v10, v11, ... ]
//
// Implementation:
//   - Stage 1: resolve options over the defaults.
//   - Stage 2: write the header, then one bracketed row per line in fixed
//     row-major order. *Dense reads its buffer directly through the stride;
//     other containers go through At.
//
// Behavior highlights:
//   - Deterministic: repeated calls on an unchanged matrix yield the same text.
//   - A row with no columns renders as "[ ]".
//   - Not a serialization format; there is no parser.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for the output.
func Render(m Matrix, opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)
	rows, cols := m.Dims()
	at := elementReader(m)

	var b strings.Builder
	var scratch []byte
	b.WriteString(o.prefix)
	b.WriteString(_fmtHeader)
	b.WriteString(strconv.Itoa(rows))
	b.WriteString(_fmtBy)
	b.WriteString(strconv.Itoa(cols))
	b.WriteString(_fmtHeadEnd)

	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			b.WriteString(_fmtPad)
			scratch = strconv.AppendFloat(scratch[:0], at(i, j), o.format, o.precision, 64)
			b.Write(scratch)
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// elementReader returns a bounds-trusting reader for in-range coordinates.
// *Dense takes the fast path over its flat buffer.
func elementReader(m Matrix) func(i, j int) float64 {
	if d, ok := m.(*Dense); ok {
		return func(i, j int) float64 { return d.data[d.offset(i, j)] }
	}

	return func(i, j int) float64 {
		v, err := m.At(i, j)
		if err != nil {
			// Dims and At disagree; a conforming container never gets here.
			panic(err)
		}

		return v
	}
}
