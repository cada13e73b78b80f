// Package loss provides cost functions that aggregate prediction error over
// a sample set.
package loss

// Loss measures the error of predicted against expected over the first n
// entries of both slices.
//
// Implementations do not validate lengths: a slice shorter than n panics
// with an index out of range, the same as any other misaligned access.
type Loss interface {
	Cost(expected, predicted []float64, n int) float64
}

// Func adapts an ordinary function to the Loss interface.
type Func func(expected, predicted []float64, n int) float64

// Cost calls f(expected, predicted, n)
func (f Func) Cost(expected, predicted []float64, n int) float64 {
	return f(expected, predicted, n)
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Cost computes mean squared error: (1/n) * sum((predicted - expected)^2)
func (MSE) Cost(expected, predicted []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		diff := predicted[i] - expected[i]
		sum += diff * diff
	}
	return sum / float64(n)
}
