// Package net provides the layered network built from perceptrons and the
// loop that trains any model step by step.
package net

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// ErrInvalidConfig reports an unusable list of layer widths.
var ErrInvalidConfig = errors.New("invalid network configuration")

// Network is a fully connected stack of neurons.
//
// All neurons live in one arena, layer by layer. A neuron of the first
// computed layer reads raw features; every later neuron lists the arena
// indices of the whole previous layer as its Upstream. Each neuron exists
// once, so a training update to a hidden neuron is seen by every neuron
// downstream of it.
type Network struct {
	neurons []neuron.Neuron
	widths  []int
	// offsets[i] is the arena index of the first neuron of computed layer i;
	// offsets[len(offsets)-1] == len(neurons).
	offsets []int
}

// Build creates a network from layer widths. widths[0] is the number of
// input features and the last entry the number of outputs. The output layer
// uses output, every other computed layer uses hidden. Parameters are drawn
// from rng neuron by neuron, weights before bias.
func Build(widths []int, hidden, output activations.Activation, rng neuron.Initializer) (*Network, error) {
	if len(widths) < 2 {
		return nil, errors.Wrapf(ErrInvalidConfig, "need at least 2 layer widths, got %d", len(widths))
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "layer %d has width %d", i, w)
		}
	}

	n := &Network{
		widths:  append([]int(nil), widths...),
		offsets: make([]int, 0, len(widths)),
	}

	prevStart := 0
	for i := 1; i < len(widths); i++ {
		act := hidden
		if i == len(widths)-1 {
			act = output
		}

		start := len(n.neurons)
		n.offsets = append(n.offsets, start)
		for j := 0; j < widths[i]; j++ {
			nr := neuron.New(act, widths[i-1], rng)
			if i > 1 {
				nr.Upstream = make([]int, widths[i-1])
				for k := range nr.Upstream {
					nr.Upstream[k] = prevStart + k
				}
			}
			n.neurons = append(n.neurons, *nr)
		}
		prevStart = start
	}
	n.offsets = append(n.offsets, len(n.neurons))

	return n, nil
}

// Widths returns a copy of the layer widths, input first.
func (n *Network) Widths() []int {
	return append([]int(nil), n.widths...)
}

// Depth returns the number of computed layers.
func (n *Network) Depth() int {
	return len(n.widths) - 1
}

// Len returns the number of neurons in the network.
func (n *Network) Len() int {
	return len(n.neurons)
}

// Neuron returns neuron i of the arena.
func (n *Network) Neuron(i int) *neuron.Neuron {
	return &n.neurons[i]
}

// Layer returns the neurons of computed layer i (0 is the first layer after
// the inputs). The slice aliases the network.
func (n *Network) Layer(i int) []neuron.Neuron {
	return n.neurons[n.offsets[i]:n.offsets[i+1]]
}

// OutputNeurons returns the final layer.
func (n *Network) OutputNeurons() []neuron.Neuron {
	return n.Layer(n.Depth() - 1)
}

// Forward computes the network's output vector for x.
//
// Every neuron is evaluated once per call and its output kept until the
// call returns, which gives the same values as ComputeNeuron on each output
// neuron without re-walking shared upstream neurons.
func (n *Network) Forward(x []float64) []float64 {
	outs := make([]float64, len(n.neurons))
	var in []float64

	for i := range n.neurons {
		nr := &n.neurons[i]
		if len(nr.Upstream) == 0 {
			outs[i] = nr.Compute(x)
			continue
		}
		in = in[:0]
		for _, up := range nr.Upstream {
			in = append(in, outs[up])
		}
		outs[i] = nr.Activation.Activate(nr.WeightedSum(in))
	}

	last := n.offsets[len(n.offsets)-2]
	return outs[last:]
}

// ComputeNeuron evaluates neuron i by recursing through its upstream
// neurons, recomputing each of them from x on every visit.
func (n *Network) ComputeNeuron(i int, x []float64) float64 {
	nr := &n.neurons[i]
	if len(nr.Upstream) == 0 {
		return nr.Compute(x)
	}

	in := make([]float64, len(nr.Upstream))
	for k, up := range nr.Upstream {
		in[k] = n.ComputeNeuron(up, x)
	}
	return nr.Activation.Activate(nr.WeightedSum(in))
}

// Weights returns a snapshot of computed layer i's weights: one row per
// neuron, one column per input.
func (n *Network) Weights(i int) *mat.Dense {
	layer := n.Layer(i)
	cols := n.widths[i]
	w := make([]float64, 0, len(layer)*cols)
	for _, nr := range layer {
		w = append(w, nr.Weights...)
	}
	return mat.NewDense(len(layer), cols, w)
}

// Biases returns a snapshot of computed layer i's biases.
func (n *Network) Biases(i int) *mat.VecDense {
	layer := n.Layer(i)
	b := make([]float64, len(layer))
	for j, nr := range layer {
		b[j] = nr.Bias
	}
	return mat.NewVecDense(len(b), b)
}

// Summary prints a summary of the network architecture.
func (n *Network) Summary(w io.Writer) {
	fmt.Fprintln(w, "_________________________________________________________________")
	fmt.Fprintf(w, "%-12s %-10s %-10s %-12s %-10s\n", "Layer", "Neurons", "Inputs", "Activation", "Param #")
	fmt.Fprintln(w, "=================================================================")

	total := 0
	for i := 0; i < n.Depth(); i++ {
		layer := n.Layer(i)
		params := len(layer) * (n.widths[i] + 1)
		total += params
		fmt.Fprintf(w, "%-12s %-10d %-10d %-12s %-10d\n",
			fmt.Sprintf("dense_%d", i), len(layer), n.widths[i], layer[0].Activation.Name(), params)
	}
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Total params: %d\n", total)
}
