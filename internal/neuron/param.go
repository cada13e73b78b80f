package neuron

import "fmt"

// Kind tells which storage a Param addresses.
type Kind uint8

const (
	// Weight addresses one entry of Neuron.Weights.
	Weight Kind = iota
	// Bias addresses Neuron.Bias.
	Bias
)

func (k Kind) String() string {
	switch k {
	case Weight:
		return "weight"
	case Bias:
		return "bias"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Param identifies exactly one trainable scalar of a model.
// Index is only meaningful for Weight.
type Param struct {
	Neuron int
	Kind   Kind
	Index  int
}

// WeightParam refers to weight i of the given neuron.
func WeightParam(neuron, i int) Param {
	return Param{Neuron: neuron, Kind: Weight, Index: i}
}

// BiasParam refers to the bias of the given neuron.
func BiasParam(neuron int) Param {
	return Param{Neuron: neuron, Kind: Bias}
}

func (p Param) String() string {
	if p.Kind == Bias {
		return fmt.Sprintf("n%d.bias", p.Neuron)
	}
	return fmt.Sprintf("n%d.w%d", p.Neuron, p.Index)
}

// Model is anything whose output can be predicted from a feature vector and
// whose trainable scalars can be read and written through a Param.
//
// Param.Neuron is an index into the model's own neurons. A lone *Neuron is
// neuron 0 and ignores the field, so Params from a network must not be
// passed to it.
type Model interface {
	// Predict appends the model's outputs for x to dst and returns it.
	Predict(x, dst []float64) []float64

	// Outputs is the number of values Predict appends per call.
	Outputs() int

	// Params lists every trainable scalar in training order.
	Params() []Param

	Param(p Param) float64
	SetParam(p Param, v float64)

	// CloneModel returns an independent deep copy.
	CloneModel() Model
}

// value returns a pointer to the scalar p addresses within n.
func (n *Neuron) value(p Param) *float64 {
	if p.Kind == Bias {
		return &n.Bias
	}
	return &n.Weights[p.Index]
}

// Predict appends Compute(x) to dst.
func (n *Neuron) Predict(x, dst []float64) []float64 {
	return append(dst, n.Compute(x))
}

// Outputs returns 1.
func (n *Neuron) Outputs() int { return 1 }

// Params returns the weights in index order followed by the bias.
// A lone neuron is always neuron 0.
func (n *Neuron) Params() []Param {
	params := make([]Param, 0, len(n.Weights)+1)
	for i := range n.Weights {
		params = append(params, WeightParam(0, i))
	}
	return append(params, BiasParam(0))
}

// Param reads the scalar p refers to. p.Neuron is ignored.
func (n *Neuron) Param(p Param) float64 {
	return *n.value(p)
}

// SetParam writes the scalar p refers to. p.Neuron is ignored.
func (n *Neuron) SetParam(p Param, v float64) {
	*n.value(p) = v
}

func (n *Neuron) CloneModel() Model {
	return n.Clone()
}
