package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRowsCSV reads a headerless CSV of ncols-wide float rows, the
// shape cmd/orthogonalize's basis-set file uses (one orthonormal basis
// vector per line, no header).
func ParseRowsCSV(r io.Reader, ncols int) ([][]float64, error) {
	cr := csv.NewReader(r)

	var rows [][]float64
	lineNum := 0
	for {
		lineNum++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading CSV line %d: %w", lineNum, err)
		}
		if len(record) != ncols {
			return nil, fmt.Errorf("ingest: line %d: expected %d fields, got %d", lineNum, ncols, len(record))
		}
		row := make([]float64, ncols)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("ingest: line %d: parsing field %d: %w", lineNum, i, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
