package opt

import (
	"testing"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// BenchmarkStep benchmarks one sequential training step on the regression set.
func BenchmarkStep(b *testing.B) {
	ds := linearSamples()
	n := neuron.New(activations.Identity{}, 2, neuron.Uniform(1))
	tr := NewTrainer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Step(n, loss.MSE{}, ds, ds.Len())
	}
}

// BenchmarkStepParallel benchmarks the snapshot step with one worker per parameter.
func BenchmarkStepParallel(b *testing.B) {
	ds := linearSamples()
	n := neuron.New(activations.Identity{}, 2, neuron.Uniform(1))
	tr := NewTrainer()
	tr.Workers = 3

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Step(n, loss.MSE{}, ds, ds.Len())
	}
}
