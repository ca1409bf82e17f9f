// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for debug rendering.
// This file defines:
//   - RenderOption / renderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
//
// Design goals:
//   - Deterministic output: no global state, no locale.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision renders the shortest decimal that reads back as the
	// same float64 (1 for 1.0, 0.5 for 0.5).
	DefaultPrecision = -1

	// DefaultFloatFormat is plain decimal notation, never an exponent.
	DefaultFloatFormat byte = 'f'

	// DefaultPrefix is the label written before the header ("" for Dense).
	DefaultPrefix = ""
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying setters.
type renderOptions struct {
	prefix    string // DefaultPrefix
	precision int    // DefaultPrecision; >= -1
	format    byte   // DefaultFloatFormat; 'f', 'g' or 'e'
}

// WithPrefix writes label in front of the "Matrix (RxC):" header.
// RowVector and ColVector use it to name themselves.
func WithPrefix(label string) RenderOption {
	return func(o *renderOptions) { o.prefix = label }
}

// WithPrecision sets the number of digits after the decimal point
// ('f', 'e') or significant digits ('g'). -1 selects the shortest
// round-trip representation.
//
// Panics when p < -1.
func WithPrecision(p int) RenderOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithFloatFormat selects the strconv float verb: 'f' (plain decimal),
// 'g' (compact, exponent for large magnitudes) or 'e' (always exponent).
//
// Panics on any other byte.
func WithFloatFormat(f byte) RenderOption {
	switch f {
	case 'f', 'g', 'e':
	default:
		panic(panicFormatInvalid)
	}

	return func(o *renderOptions) { o.format = f }
}

// gatherRenderOptions applies user setters on top of the defaults in order;
// last writer wins.
func gatherRenderOptions(user ...RenderOption) renderOptions {
	o := renderOptions{
		prefix:    DefaultPrefix,
		precision: DefaultPrecision,
		format:    DefaultFloatFormat,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
