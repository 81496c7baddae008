package demio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/muka28/TopographicProminence/grid"
)

// DecodeCSV reads comma-separated integer rows and returns the resulting
// Grid. Every row must have the same number of fields; a ragged row
// returns ErrInputMalformed. Elevations below zero are clamped to zero.
//
// Complexity: O(N) time, O(N) memory.
func DecodeCSV(r io.Reader) (*grid.Grid, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty CSV grid", ErrInputMalformed)
	}

	cols := len(rows[0])
	elev := make([]int32, 0, len(rows)*cols)
	for ri, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrInputMalformed, ri, len(row), cols)
		}
		for _, field := range row {
			v, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInputMalformed, ri, err)
			}
			if v < 0 {
				v = 0
			}
			elev = append(elev, int32(v))
		}
	}

	return grid.New(int32(len(rows)), int32(cols), elev)
}
