package demio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/muka28/TopographicProminence/grid"
)

// DecodeBinary reads a contiguous sequence of little-endian int16
// elevations and returns the resulting Grid. If shape is non-nil it is
// used as-is (and validated against the decoded cell count); otherwise
// dimensions are inferred from the byte length via inferShape.
//
// Elevations below zero are clamped to zero during decode.
//
// Complexity: O(N) time, O(N) memory.
func DecodeBinary(r io.Reader, shape *Shape) (*grid.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("demio: reading binary input: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte length %d", ErrInputMalformed, len(raw))
	}
	cells := int64(len(raw) / 2)

	var resolved Shape
	if shape != nil {
		if int64(shape.Rows)*int64(shape.Cols) != cells {
			return nil, fmt.Errorf("%w: declared shape %dx%d does not match %d cells", ErrInputMalformed, shape.Rows, shape.Cols, cells)
		}
		resolved = *shape
	} else {
		resolved, err = inferShape(cells)
		if err != nil {
			return nil, err
		}
	}

	n := int64(resolved.Rows) * int64(resolved.Cols)
	if n != cells || n > (1<<31-1) {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrArithmeticOverflow, resolved.Rows, resolved.Cols)
	}

	elev := make([]int32, cells)
	for i := int64(0); i < cells; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		if v < 0 {
			v = 0
		}
		elev[i] = int32(v)
	}

	return grid.New(resolved.Rows, resolved.Cols, elev)
}
