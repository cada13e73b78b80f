package perceptron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeRegression(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 50k-step training in short mode")
	}

	ds := NewDataset(
		[][]float64{{2, 15}, {8, 3}, {1, 1}, {4, 7}, {6, 2}},
		[]float64{41, 35, 10, 31, 27},
	)
	n := NewNeuron(Identity, 2, Uniform(2024))

	cost := Fit(n, MSE, ds, FitConfig{Steps: 50000})

	assert.Less(t, cost, 1e-2)
	assert.InDelta(t, 3, n.Weights[0], 0.5)
	assert.InDelta(t, 2, n.Weights[1], 0.5)
	assert.InDelta(t, 5, n.Bias, 0.5)
	assert.InDelta(t, 3*10+2*10+5, n.Compute([]float64{10, 10}), 1)
}

func TestFacadeNetwork(t *testing.T) {
	nw, err := NewNetwork([]int{2, 2, 1}, Custom("softsign", func(x float64) float64 {
		return x / (1 + math.Abs(x))
	}), Sigmoid, Uniform(1))
	require.NoError(t, err)

	ds := NewDataset([][]float64{{0, 1}, {1, 0}}, []float64{1, 0})
	before := Cost(nw, MSE, ds)
	for i := 0; i < 500; i++ {
		Train(nw, MSE, ds)
	}
	assert.Less(t, Cost(nw, MSE, ds), before)

	for _, c := range GradientCheck(nw, MSE, ds) {
		assert.Less(t, c.AbsDiff(), 1e-3, "%v", c.Param)
	}
}

func TestFacadeParse(t *testing.T) {
	act, err := ParseActivation("sigmoid")
	require.NoError(t, err)
	assert.Equal(t, Sigmoid, act)

	_, err = NewNetwork([]int{2}, act, act, Uniform(1))
	assert.Error(t, err)
}
