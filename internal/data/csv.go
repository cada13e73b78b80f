package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadCSV loads data from a CSV file.
// labelCols specifies the indices of columns to be used as expected values,
// in that order; negative indices count from the end, so -1 is the last
// column. All other columns are used as inputs.
// hasHeader skips the first line if true.
func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, errors.New("csv file has no data rows")
	}

	numCols := len(records[0])
	cols := make([]int, len(labelCols))
	isLabelCol := make(map[int]bool, len(labelCols))
	for k, col := range labelCols {
		if col < 0 {
			col += numCols
		}
		if col < 0 || col >= numCols {
			return nil, errors.Errorf("label column %d out of range for %d columns", labelCols[k], numCols)
		}
		cols[k] = col
		isLabelCol[col] = true
	}

	ds := &Dataset{
		Inputs:   make([][]float64, 0, len(records)-startRow),
		Expected: make([][]float64, 0, len(records)-startRow),
	}

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, errors.Errorf("inconsistent number of columns at row %d", i)
		}

		values := make([]float64, numCols)
		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse value at row %d, col %d", i, j)
			}
			values[j] = v
		}

		inputs := make([]float64, 0, numCols-len(isLabelCol))
		for j, v := range values {
			if !isLabelCol[j] {
				inputs = append(inputs, v)
			}
		}
		expected := make([]float64, len(cols))
		for k, col := range cols {
			expected[k] = values[col]
		}

		ds.Inputs = append(ds.Inputs, inputs)
		ds.Expected = append(ds.Expected, expected)
	}

	return ds, nil
}
