package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseInputRowsCSV reads a header row of nInputs input column names
// followed by one row of inputs per time step, with no target column —
// the shape cmd/propagate's live inference driver consumes, as opposed
// to ParseTrainingCSV's input-plus-target shape.
func ParseInputRowsCSV(r io.Reader, nInputs int) ([][]float64, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading CSV header: %w", err)
	}
	if len(header) != nInputs {
		return nil, fmt.Errorf("ingest: expected %d input columns, got %d", nInputs, len(header))
	}

	var rows [][]float64
	lineNum := 1
	for {
		lineNum++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading CSV line %d: %w", lineNum, err)
		}
		if len(record) != nInputs {
			return nil, fmt.Errorf("ingest: line %d: expected %d fields, got %d", lineNum, nInputs, len(record))
		}
		row := make([]float64, nInputs)
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
