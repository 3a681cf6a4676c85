package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// LoadCSV reads a dataset from CSV records of the form x,y or x,y,yerr.
//
// A single leading header row is skipped when its first field does not parse
// as a number, which covers the usual catalog extract layout. All data rows
// must have the same column count; a yerr column applies to every row or to
// none.
func LoadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input contains no records")
	}

	// Skip a header row when the first field is not numeric.
	start := 0
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		start = 1
	}
	rows := records[start:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv input contains only a header")
	}

	cols := len(rows[0])
	if cols != 2 && cols != 3 {
		return nil, fmt.Errorf("expected 2 or 3 columns (x,y[,yerr]), got %d", cols)
	}

	x := make([]float64, len(rows))
	y := make([]float64, len(rows))
	var yerr []float64
	if cols == 3 {
		yerr = make([]float64, len(rows))
	}

	for i, rec := range rows {
		if x[i], err = strconv.ParseFloat(rec[0], 64); err != nil {
			return nil, fmt.Errorf("row %d: parse x: %w", start+i+1, err)
		}
		if y[i], err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("row %d: parse y: %w", start+i+1, err)
		}
		if cols == 3 {
			if yerr[i], err = strconv.ParseFloat(rec[2], 64); err != nil {
				return nil, fmt.Errorf("row %d: parse yerr: %w", start+i+1, err)
			}
		}
	}

	if yerr != nil {
		return New(x, y, WithErrors(yerr))
	}

	return New(x, y)
}
