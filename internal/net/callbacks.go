package net

import (
	"fmt"
	"io"
	"os"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(m neuron.Model)
	OnTrainEnd(m neuron.Model)
	OnStepEnd(step int, cost float64, m neuron.Model)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin(neuron.Model)            {}
func (BaseCallback) OnTrainEnd(neuron.Model)              {}
func (BaseCallback) OnStepEnd(int, float64, neuron.Model) {}

// Logger logs training progress.
type Logger struct {
	BaseCallback
	Out io.Writer // defaults to os.Stdout
}

func (c Logger) OnStepEnd(step int, cost float64, m neuron.Model) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Step %d: cost = %.6f\n", step, cost)
}

// History records every reported cost.
type History struct {
	BaseCallback
	Steps []int
	Costs []float64
}

func (h *History) OnStepEnd(step int, cost float64, m neuron.Model) {
	h.Steps = append(h.Steps, step)
	h.Costs = append(h.Costs, cost)
}
