package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/errs"
)

// LoadCSV loads a dataset from a CSV file.
//
// Format: one example per row, features first and the 0/1 label in the last
// column. A first row that does not parse as numbers is treated as a header.
//
//	x1,x2,x3,label
//	0.5,1.2,-0.3,1
//	...
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses the LoadCSV format from r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) > 0 && !isNumeric(records[0]) {
		records = records[1:] // header
	}
	if len(records) == 0 {
		return nil, errs.Input("read csv", "no data rows")
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, errs.Input("read csv", "need at least one feature and a label, got %d columns", cols)
	}

	features := mat.NewDense(len(records), cols-1, nil)
	labels := make([]float64, len(records))

	for i, record := range records {
		if len(record) != cols {
			return nil, errs.Dimension("read csv", fmt.Sprintf("column count at row %d", i+1), len(record), cols)
		}
		row := features.RawRowView(i)
		for j, field := range record[:cols-1] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid feature at row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		y, err := strconv.ParseFloat(record[cols-1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", i+1, err)
		}
		labels[i] = y
	}

	return New(features, labels)
}

func isNumeric(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return false
		}
	}
	return true
}
