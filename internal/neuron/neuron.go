// Package neuron implements a single perceptron: a weighted sum of its
// inputs plus a bias, passed through an activation function.
package neuron

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
)

// Neuron is one unit of computation.
//
// A neuron with no Upstream reads raw feature values directly. Inside a
// network, Upstream lists the arena indices of the neurons whose outputs it
// consumes, and len(Upstream) == len(Weights).
type Neuron struct {
	Weights    []float64
	Bias       float64
	Activation activations.Activation
	Upstream   []int
}

// New creates a neuron with nConnections weights. Weights are drawn from
// rng first, in index order, followed by the bias.
func New(act activations.Activation, nConnections int, rng Initializer) *Neuron {
	weights := make([]float64, nConnections)
	for i := range weights {
		weights[i] = Draw(rng)
	}
	return &Neuron{
		Weights:    weights,
		Bias:       Draw(rng),
		Activation: act,
	}
}

// NConnections returns the number of inputs the neuron consumes.
func (n *Neuron) NConnections() int {
	return len(n.Weights)
}

// WeightedSum returns sum(inputs[i] * Weights[i]) + Bias over the first
// NConnections() inputs.
func (n *Neuron) WeightedSum(inputs []float64) float64 {
	var sum float64
	for i, w := range n.Weights {
		sum += inputs[i] * w
	}
	return sum + n.Bias
}

// Compute runs the forward pass on a raw feature vector.
// x must hold at least NConnections() values.
func (n *Neuron) Compute(x []float64) float64 {
	return n.Activation.Activate(n.WeightedSum(x))
}

// Clone returns a deep copy of the neuron.
func (n *Neuron) Clone() *Neuron {
	c := &Neuron{
		Weights:    append([]float64(nil), n.Weights...),
		Bias:       n.Bias,
		Activation: n.Activation,
	}
	if n.Upstream != nil {
		c.Upstream = append([]int(nil), n.Upstream...)
	}
	return c
}
