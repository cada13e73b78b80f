// Package perceptron is the public entry point: a single neuron or a small
// layered network trained by finite-difference gradient descent.
package perceptron

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// Re-export common types and functions for easier access
type (
	Activation  = activations.Activation
	Loss        = loss.Loss
	Neuron      = neuron.Neuron
	Network     = net.Network
	Model       = neuron.Model
	Param       = neuron.Param
	Initializer = neuron.Initializer
	Dataset     = data.Dataset
	Trainer     = opt.Trainer
	FitConfig   = net.FitConfig
	Callback    = net.Callback
	Comparison  = diff.Comparison
)

// Activations
var (
	Identity = activations.Identity{}
	Sigmoid  = activations.Sigmoid{}
	Tanh     = activations.Tanh{}
	ReLU     = activations.ReLU{}
)

// Custom wraps f as a named Activation.
func Custom(name string, f func(float64) float64) Activation {
	return activations.Func{Label: name, F: f}
}

// ParseActivation looks an activation up by name.
func ParseActivation(name string) (Activation, error) {
	return activations.Parse(name)
}

// Losses
var MSE = loss.MSE{}

// Initialisation
func Uniform(seed uint64) Initializer {
	return neuron.Uniform(seed)
}

// Models
func NewNeuron(act Activation, nConnections int, rng Initializer) *Neuron {
	return neuron.New(act, nConnections, rng)
}

func NewNetwork(widths []int, hidden, output Activation, rng Initializer) (*Network, error) {
	return net.Build(widths, hidden, output, rng)
}

// Data
func NewDataset(inputs [][]float64, expected []float64) *Dataset {
	return data.FromScalars(inputs, expected)
}

func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	return data.LoadCSV(filename, labelCols, hasHeader)
}

// Training
func NewTrainer() *Trainer {
	return opt.NewTrainer()
}

// Cost evaluates l over every sample of ds.
func Cost(m Model, l Loss, ds *Dataset) float64 {
	return diff.Cost(m, l, ds, ds.Len())
}

// Gradient measures the forward-difference gradient of p over every sample.
func Gradient(m Model, l Loss, ds *Dataset, p Param) float64 {
	return diff.Gradient(m, l, ds, p, ds.Len())
}

// Train performs one gradient-descent step over every sample.
func Train(m Model, l Loss, ds *Dataset) {
	opt.Train(m, l, ds, ds.Len())
}

// Fit runs cfg.Steps training steps and returns the final cost.
func Fit(m Model, l Loss, ds *Dataset, cfg FitConfig, callbacks ...Callback) float64 {
	return net.Fit(m, l, ds, cfg, callbacks...)
}

// GradientCheck compares every parameter's estimate with a central difference.
func GradientCheck(m Model, l Loss, ds *Dataset) []Comparison {
	return diff.Estimator{Eps: diff.DefaultEps}.CheckAll(m, l, ds, ds.Len())
}
