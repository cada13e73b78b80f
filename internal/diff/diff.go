// Package diff measures cost gradients numerically: each parameter is nudged
// by a small step and the change in aggregate cost is divided by the step.
//
// Nothing here knows calculus. The derivative is observed, not derived.
package diff

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// DefaultEps is the forward-difference step. Truncation error grows with it,
// cancellation error grows as it shrinks.
const DefaultEps = 1e-4

// Cost evaluates m on the first n samples of ds and returns l's aggregate
// over all of them. Predictions and expected values are flattened
// sample-major, so a single-output model scores exactly l(expected, pred, n).
func Cost(m neuron.Model, l loss.Loss, ds *data.Dataset, n int) float64 {
	outputs := m.Outputs()
	predicted := make([]float64, 0, n*outputs)
	expected := make([]float64, 0, n*outputs)
	for i := 0; i < n; i++ {
		predicted = m.Predict(ds.Inputs[i], predicted)
		expected = append(expected, ds.Expected[i]...)
	}
	return l.Cost(expected, predicted, n*outputs)
}

// Estimator computes forward-difference gradients with step Eps.
type Estimator struct {
	Eps float64
}

// Gradient returns (cost(v+eps) - cost(v)) / eps for the parameter p, whose
// current value is v. The parameter is written back to exactly v before the
// baseline cost is measured, so the model is unchanged when Gradient returns.
//
// Gradient mutates m while it runs and must not race with other users of m.
func (e Estimator) Gradient(m neuron.Model, l loss.Loss, ds *data.Dataset, p neuron.Param, n int) float64 {
	v := m.Param(p)

	m.SetParam(p, v+e.Eps)
	variation := Cost(m, l, ds, n)

	m.SetParam(p, v)
	normal := Cost(m, l, ds, n)

	return (variation - normal) / e.Eps
}

// Gradient is Estimator{DefaultEps}.Gradient.
func Gradient(m neuron.Model, l loss.Loss, ds *data.Dataset, p neuron.Param, n int) float64 {
	return Estimator{Eps: DefaultEps}.Gradient(m, l, ds, p, n)
}
