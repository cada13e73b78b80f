package opt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

const trainingSteps = 50000

// linear samples y = 3*x1 + 2*x2 + 5
func linearSamples() *data.Dataset {
	return data.FromScalars(
		[][]float64{{2, 15}, {8, 3}, {1, 1}, {4, 7}, {6, 2}},
		[]float64{41, 35, 10, 31, 27},
	)
}

// linearly separable labels
func classSamples() *data.Dataset {
	return data.FromScalars(
		[][]float64{{6, 1}, {5, 0}, {4, 1}, {1, 4}, {1, 2}, {2, 3}},
		[]float64{1, 1, 1, 0, 0, 0},
	)
}

func TestNewTrainerDefaults(t *testing.T) {
	tr := NewTrainer()

	assert.Equal(t, 1e-3, tr.Optimizer.LearningRate)
	assert.Equal(t, 1e-4, tr.Estimator.Eps)
	assert.Equal(t, 0, tr.Workers)
	assert.GreaterOrEqual(t, DefaultWorkers(), 1)
}

// TestStepSequential replays one step by hand: each gradient must be taken
// after the previous parameter was already updated.
func TestStepSequential(t *testing.T) {
	ds := linearSamples()
	n := neuron.New(activations.Identity{}, 2, neuron.Uniform(9))
	manual := n.Clone()

	Train(n, loss.MSE{}, ds, ds.Len())

	for _, p := range manual.Params() {
		g := diff.Gradient(manual, loss.MSE{}, ds, p, ds.Len())
		manual.SetParam(p, manual.Param(p)-DefaultLearningRate*g)
	}

	assert.Equal(t, manual.Weights, n.Weights)
	assert.Equal(t, manual.Bias, n.Bias)
}

// TestStepSequentialDiffersFromSnapshot shows the sequential rule is not
// the simultaneous one: the bias gradient sees the updated weights.
func TestStepSequentialDiffersFromSnapshot(t *testing.T) {
	ds := linearSamples()
	n := neuron.New(activations.Identity{}, 2, neuron.Uniform(9))
	snapshot := n.Clone()

	grads := make([]float64, 0, 3)
	for _, p := range snapshot.Params() {
		grads = append(grads, diff.Gradient(snapshot, loss.MSE{}, ds, p, ds.Len()))
	}

	Train(n, loss.MSE{}, ds, ds.Len())

	simultaneousBias := snapshot.Bias - DefaultLearningRate*grads[2]
	assert.NotEqual(t, simultaneousBias, n.Bias)
	// the first weight has nothing before it
	assert.Equal(t, snapshot.Weights[0]-DefaultLearningRate*grads[0], n.Weights[0])
}

func TestStepParallelMatchesSnapshot(t *testing.T) {
	ds := linearSamples()
	n := neuron.New(activations.Sigmoid{}, 2, neuron.Uniform(4))
	snapshot := n.Clone()

	tr := NewTrainer()
	tr.Workers = 2
	tr.Step(n, loss.MSE{}, ds, ds.Len())

	for _, p := range snapshot.Params() {
		g := diff.Gradient(snapshot, loss.MSE{}, ds, p, ds.Len())
		want := snapshot.Param(p) - DefaultLearningRate*g
		assert.Equal(t, want, n.Param(p), "%v", p)
	}
}

func TestStepLowersCost(t *testing.T) {
	ds := classSamples()
	n := neuron.New(activations.Sigmoid{}, 2, neuron.Uniform(21))

	before := diff.Cost(n, loss.MSE{}, ds, ds.Len())
	for i := 0; i < 100; i++ {
		Train(n, loss.MSE{}, ds, ds.Len())
	}
	after := diff.Cost(n, loss.MSE{}, ds, ds.Len())

	assert.Less(t, after, before)
}

// TestStepNaNPropagates tests that divergence is not guarded.
func TestStepNaNPropagates(t *testing.T) {
	ds := data.FromScalars([][]float64{{math.NaN()}}, []float64{1})
	n := &neuron.Neuron{Weights: []float64{0.5}, Bias: 0.5, Activation: activations.Identity{}}

	Train(n, loss.MSE{}, ds, 1)

	assert.True(t, math.IsNaN(n.Weights[0]))
	assert.True(t, math.IsNaN(n.Bias))
}

// TestLinearRegression learns y = 3*x1 + 2*x2 + 5 with an identity neuron.
func TestLinearRegression(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 50k-step training in short mode")
	}

	for _, seed := range []uint64{1, 2, 3} {
		ds := linearSamples()
		n := neuron.New(activations.Identity{}, 2, neuron.Uniform(seed))

		for i := 0; i < trainingSteps; i++ {
			Train(n, loss.MSE{}, ds, ds.Len())
		}

		cost := diff.Cost(n, loss.MSE{}, ds, ds.Len())
		require.Less(t, cost, 1e-2, "seed %d", seed)
		assert.InDelta(t, 3, n.Weights[0], 0.5, "seed %d", seed)
		assert.InDelta(t, 2, n.Weights[1], 0.5, "seed %d", seed)
		assert.InDelta(t, 5, n.Bias, 0.5, "seed %d", seed)
	}
}

// TestBinaryClassification trains a sigmoid neuron on separable labels.
func TestBinaryClassification(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 50k-step training in short mode")
	}

	ds := classSamples()
	n := neuron.New(activations.Sigmoid{}, 2, neuron.Uniform(8))

	for i := 0; i < trainingSteps; i++ {
		Train(n, loss.MSE{}, ds, ds.Len())
	}

	for i, x := range ds.Inputs {
		label := ds.Expected[i][0]
		out := n.Compute(x)
		assert.InDelta(t, label, out, 0.3, "sample %v", x)

		predicted := 0.0
		if out >= 0.5 {
			predicted = 1
		}
		assert.Equal(t, label, predicted, "sample %v", x)
	}
}

func TestLinearRegressionParallel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 50k-step training in short mode")
	}

	ds := linearSamples()
	n := neuron.New(activations.Identity{}, 2, neuron.Uniform(5))
	tr := NewTrainer()
	tr.Workers = 3

	for i := 0; i < trainingSteps; i++ {
		tr.Step(n, loss.MSE{}, ds, ds.Len())
	}

	assert.Less(t, diff.Cost(n, loss.MSE{}, ds, ds.Len()), 1e-2)
	assert.InDelta(t, 5, n.Bias, 0.5)
}
