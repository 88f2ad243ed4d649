package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWeightsCSV reads a single-row CSV of comma-separated doubles into
// a flat weight vector, the format cmd/propagate and cmd/gradcheck
// accept for a trained model's weights.
func ParseWeightsCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	record, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading weights CSV: %w", err)
	}

	weights := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: parsing weight %d: %w", i, err)
		}
		weights[i] = v
	}
	return weights, nil
}
