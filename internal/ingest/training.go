// Package ingest parses the CSV shapes the CLI and server accept: a
// training sequence (input columns plus a target column) and a flat
// weight vector.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rnntrain/internal/linalg"
)

// TrainingData holds a parsed training sequence: nInputs rows by
// nSamples columns of input, and one target scalar per sample.
type TrainingData struct {
	Input  *linalg.Matrix
	Output *linalg.Vector
}

// ParseTrainingCSV reads a CSV with a header row of input column names
// followed by a trailing "target" column, one time step per data row:
//
//	in1,in2,target
//	0.1,0.2,0.5
//	0.2,0.1,0.4
//
// Each data row becomes one column of TrainingData.Input (time-major on
// disk, transposed into the column-per-time-step layout the training
// context expects) and one element of TrainingData.Output.
func ParseTrainingCSV(r io.Reader) (*TrainingData, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading CSV header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("ingest: expected at least 1 input column and a target column, got %d columns", len(header))
	}
	if strings.TrimSpace(header[len(header)-1]) != "target" {
		return nil, fmt.Errorf("ingest: expected last column to be %q, got %q", "target", header[len(header)-1])
	}
	nInputs := len(header) - 1

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
		row, err := parseTrainingRow(record, nInputs, lineNum)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	nSamples := len(rows)
	input := linalg.NewMatrix(nInputs, nSamples)
	output := linalg.NewVector(nSamples)
	for t, row := range rows {
		for i := 0; i < nInputs; i++ {
			input.Set(i, t, row[i])
		}
		output.Data[t] = row[nInputs]
	}

	return &TrainingData{Input: input, Output: output}, nil
}

func parseTrainingRow(record []string, nInputs, lineNum int) ([]float64, error) {
	if len(record) != nInputs+1 {
		return nil, fmt.Errorf("ingest: line %d: expected %d fields, got %d", lineNum, nInputs+1, len(record))
	}
	row := make([]float64, nInputs+1)
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: parsing field %d: %w", lineNum, i, err)
		}
		row[i] = v
	}
	return row, nil
}
