package net

import "github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"

// Predict appends Forward(x) to dst.
func (n *Network) Predict(x, dst []float64) []float64 {
	return append(dst, n.Forward(x)...)
}

// Outputs returns the width of the output layer.
func (n *Network) Outputs() int {
	return n.widths[len(n.widths)-1]
}

// Params lists neuron by neuron, in arena order, each neuron's weights
// followed by its bias.
func (n *Network) Params() []neuron.Param {
	var params []neuron.Param
	for i := range n.neurons {
		for j := range n.neurons[i].Weights {
			params = append(params, neuron.WeightParam(i, j))
		}
		params = append(params, neuron.BiasParam(i))
	}
	return params
}

func (n *Network) Param(p neuron.Param) float64 {
	return n.neurons[p.Neuron].Param(p)
}

func (n *Network) SetParam(p neuron.Param, v float64) {
	n.neurons[p.Neuron].SetParam(p, v)
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := &Network{
		neurons: make([]neuron.Neuron, len(n.neurons)),
		widths:  append([]int(nil), n.widths...),
		offsets: append([]int(nil), n.offsets...),
	}
	for i := range n.neurons {
		c.neurons[i] = *n.neurons[i].Clone()
	}
	return c
}

func (n *Network) CloneModel() neuron.Model {
	return n.Clone()
}
