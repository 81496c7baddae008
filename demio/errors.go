package demio

import "errors"

// Sentinel errors for the conditions decoding can fail on. The core never
// returns these — they are surfaced only at the I/O boundary, before the
// core is ever invoked.
var (
	// ErrInputMalformed indicates the file cannot be parsed into a
	// rectangular integer grid: odd byte length for binary, or a ragged
	// row for CSV.
	ErrInputMalformed = errors.New("demio: input cannot be parsed into a rectangular grid")
	// ErrDimensionUnknown indicates a binary file's length matches no
	// known DEM shape and is not a perfect square.
	ErrDimensionUnknown = errors.New("demio: binary file length matches no known DEM shape")
	// ErrArithmeticOverflow indicates rows*cols overflows the index width
	// before any allocation is attempted.
	ErrArithmeticOverflow = errors.New("demio: rows*cols overflows the grid index width")
)
