// Package data holds training sample sets: parallel sequences of input
// vectors and expected outputs.
package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrShape reports a sample whose dimensionality does not match the model.
var ErrShape = errors.New("sample shape mismatch")

// Dataset represents a collection of input vectors and the outputs expected
// for them. Inputs[i] pairs with Expected[i].
type Dataset struct {
	Inputs   [][]float64
	Expected [][]float64
}

// FromScalars builds a dataset for a single-output model.
func FromScalars(inputs [][]float64, expected []float64) *Dataset {
	rows := make([][]float64, len(expected))
	for i, y := range expected {
		rows[i] = []float64{y}
	}
	return &Dataset{Inputs: inputs, Expected: rows}
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// Validate checks that every sample has at least features inputs and
// exactly outputs expected values. Training never calls it; callers that
// want friendly errors instead of index panics run it first.
func (d *Dataset) Validate(features, outputs int) error {
	if len(d.Inputs) != len(d.Expected) {
		return errors.Wrapf(ErrShape, "%d inputs but %d expected rows", len(d.Inputs), len(d.Expected))
	}
	if len(d.Inputs) == 0 {
		return errors.Wrap(ErrShape, "empty dataset")
	}
	for i := range d.Inputs {
		if len(d.Inputs[i]) < features {
			return errors.Wrapf(ErrShape, "sample %d has %d features, want %d", i, len(d.Inputs[i]), features)
		}
		if len(d.Expected[i]) != outputs {
			return errors.Wrapf(ErrShape, "sample %d has %d expected values, want %d", i, len(d.Expected[i]), outputs)
		}
	}
	return nil
}

// column copies feature j of every sample.
func (d *Dataset) column(j int) []float64 {
	col := make([]float64, len(d.Inputs))
	for i, x := range d.Inputs {
		col[i] = x[j]
	}
	return col
}

// Normalize performs min-max normalization on the inputs, in place.
// Constant features become 0.
func (d *Dataset) Normalize() {
	if len(d.Inputs) == 0 {
		return
	}

	for j := range d.Inputs[0] {
		col := d.column(j)
		lo, hi := floats.Min(col), floats.Max(col)
		diff := hi - lo
		for _, x := range d.Inputs {
			if diff != 0 {
				x[j] = (x[j] - lo) / diff
			} else {
				x[j] = 0
			}
		}
	}
}

// Split splits the dataset into two based on the given ratio (0.0 to 1.0).
// Returns two new Datasets (train, test) sharing the underlying rows.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	if ratio <= 0 {
		return &Dataset{}, d
	}
	if ratio >= 1 {
		return d, &Dataset{}
	}

	splitIdx := int(float64(len(d.Inputs)) * ratio)

	train := &Dataset{
		Inputs:   d.Inputs[:splitIdx],
		Expected: d.Expected[:splitIdx],
	}
	test := &Dataset{
		Inputs:   d.Inputs[splitIdx:],
		Expected: d.Expected[splitIdx:],
	}
	return train, test
}

// Feature describes one input column.
type Feature struct {
	Mean, StdDev float64
	Min, Max     float64
}

// Summary returns per-feature statistics of the inputs.
func (d *Dataset) Summary() []Feature {
	if len(d.Inputs) == 0 {
		return nil
	}

	out := make([]Feature, len(d.Inputs[0]))
	for j := range out {
		col := d.column(j)
		mean, std := stat.MeanStdDev(col, nil)
		out[j] = Feature{Mean: mean, StdDev: std, Min: floats.Min(col), Max: floats.Max(col)}
	}
	return out
}
