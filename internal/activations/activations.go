// Package activations provides the scalar activation functions a neuron
// applies to its weighted sum.
package activations

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownActivation is returned by Parse for names outside the known set.
var ErrUnknownActivation = errors.New("unknown activation")

// Activation is a pure scalar function f: R -> R.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Name identifies the variant in logs and flags.
	Name() string
}

// Identity passes the weighted sum through unchanged.
// Used for regression targets.
type Identity struct{}

// Activate returns x
func (Identity) Activate(x float64) float64 {
	return x
}

func (Identity) Name() string { return "identity" }

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + e^-x), which lies in (0, 1).
// Large |x| saturates towards 0 or 1 without error.
func (Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func (Sigmoid) Name() string { return "sigmoid" }

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x)
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

func (Tanh) Name() string { return "tanh" }

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func (ReLU) Name() string { return "relu" }

// Func wraps an arbitrary callable so it can be used where an
// Activation is expected. F must be pure.
type Func struct {
	Label string
	F     func(float64) float64
}

// Activate computes F(x)
func (f Func) Activate(x float64) float64 {
	return f.F(x)
}

func (f Func) Name() string {
	if f.Label == "" {
		return "custom"
	}
	return f.Label
}

// Parse returns the activation registered under name (case-insensitive).
// "linear" is accepted as an alias of "identity".
func Parse(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "identity", "linear":
		return Identity{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownActivation, "%q", name)
}
