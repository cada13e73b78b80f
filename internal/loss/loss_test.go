// Package loss provides unit tests for cost functions.
package loss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMSECost tests MSE against hand-computed values.
func TestMSECost(t *testing.T) {
	mse := MSE{}

	tests := []struct {
		name      string
		expected  []float64
		predicted []float64
		want      float64
	}{
		{"Perfect prediction", []float64{1.0, 2.0, 3.0}, []float64{1.0, 2.0, 3.0}, 0.0},
		{"Single error", []float64{1.5, 2.0}, []float64{1.0, 2.0}, 0.125},
		{"Multiple errors", []float64{0.0, 1.0, 2.0}, []float64{1.0, 2.0, 3.0}, 1.0},
		{"Large errors", []float64{0.0}, []float64{10.0}, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mse.Cost(tt.expected, tt.predicted, len(tt.expected))
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MSE.Cost() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMSEUsesOnlyFirstN tests that entries past n are ignored.
func TestMSEUsesOnlyFirstN(t *testing.T) {
	got := MSE{}.Cost([]float64{1, 2, 100}, []float64{1, 4, -100}, 2)
	assert.Equal(t, 2.0, got)
}

// TestMSEZeroOnSelf tests that a sequence compared with itself costs nothing.
func TestMSEZeroOnSelf(t *testing.T) {
	seqs := [][]float64{
		{0},
		{-3.5, 7, 1e9},
		{41, 35, 7, 31, 27},
	}
	for _, e := range seqs {
		assert.Equal(t, 0.0, MSE{}.Cost(e, e, len(e)))
	}
}

// TestMSESymmetric tests mse(a, b) == mse(b, a).
func TestMSESymmetric(t *testing.T) {
	a := []float64{0.3, -1.2, 8, 41}
	b := []float64{1.1, 2.5, -8, 40.5}

	assert.Equal(t, MSE{}.Cost(a, b, len(a)), MSE{}.Cost(b, a, len(a)))
}

// TestMSELengthMismatch tests that a short slice panics.
func TestMSELengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for length mismatch")
		}
	}()

	MSE{}.Cost([]float64{1.0, 2.0}, []float64{1.0}, 2)
}

// TestFunc tests the function adapter.
func TestFunc(t *testing.T) {
	mae := Func(func(expected, predicted []float64, n int) float64 {
		var sum float64
		for i := 0; i < n; i++ {
			sum += math.Abs(predicted[i] - expected[i])
		}
		return sum / float64(n)
	})

	var l Loss = mae
	assert.InDelta(t, 1.5, l.Cost([]float64{0, 0}, []float64{1, -2}, 2), 1e-12)
}
