package net

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// FitConfig controls a training run.
type FitConfig struct {
	// Steps is the number of gradient-descent steps. There is no early exit.
	Steps int

	// Trainer performs each step. nil means opt.NewTrainer().
	Trainer *opt.Trainer

	// Every is how often, in steps, the cost is measured and reported to
	// callbacks. Measuring costs one extra pass over the samples.
	// 0 reports only after the last step.
	Every int
}

// Fit trains m on every sample of ds for cfg.Steps steps and returns the
// final cost.
func Fit(m neuron.Model, l loss.Loss, ds *data.Dataset, cfg FitConfig, callbacks ...Callback) float64 {
	trainer := cfg.Trainer
	if trainer == nil {
		trainer = opt.NewTrainer()
	}
	n := ds.Len()

	for _, cb := range callbacks {
		cb.OnTrainBegin(m)
	}

	for step := 1; step <= cfg.Steps; step++ {
		trainer.Step(m, l, ds, n)

		if cfg.Every > 0 && step%cfg.Every == 0 && step != cfg.Steps {
			cost := diff.Cost(m, l, ds, n)
			for _, cb := range callbacks {
				cb.OnStepEnd(step, cost, m)
			}
		}
	}

	cost := diff.Cost(m, l, ds, n)
	for _, cb := range callbacks {
		cb.OnStepEnd(cfg.Steps, cost, m)
		cb.OnTrainEnd(m)
	}
	return cost
}
