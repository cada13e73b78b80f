package diff

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// Comparison puts the forward-difference gradient of one parameter next to
// a central-difference reference.
type Comparison struct {
	Param   neuron.Param
	Forward float64
	Central float64
}

// AbsDiff returns |Forward - Central|.
func (c Comparison) AbsDiff() float64 {
	return math.Abs(c.Forward - c.Central)
}

// Check measures p with the estimator and with gonum's central difference
// formula at the same step. The central formula has O(eps^2) truncation
// error, so a large AbsDiff points at curvature the forward step misses.
// m is restored before Check returns.
func (e Estimator) Check(m neuron.Model, l loss.Loss, ds *data.Dataset, p neuron.Param, n int) Comparison {
	v := m.Param(p)
	defer m.SetParam(p, v)

	central := fd.Derivative(func(x float64) float64 {
		m.SetParam(p, x)
		return Cost(m, l, ds, n)
	}, v, &fd.Settings{Formula: fd.Central, Step: e.Eps})
	m.SetParam(p, v)

	return Comparison{
		Param:   p,
		Forward: e.Gradient(m, l, ds, p, n),
		Central: central,
	}
}

// CheckAll runs Check for every parameter of m in training order.
func (e Estimator) CheckAll(m neuron.Model, l loss.Loss, ds *data.Dataset, n int) []Comparison {
	params := m.Params()
	out := make([]Comparison, len(params))
	for i, p := range params {
		out[i] = e.Check(m, l, ds, p, n)
	}
	return out
}
