package opt

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// Trainer performs gradient-descent steps on a neuron.Model, measuring each
// gradient with a finite-difference Estimator.
type Trainer struct {
	Optimizer SGD
	Estimator diff.Estimator

	// Workers > 1 switches Step to simultaneous updates: every gradient is
	// measured against the same snapshot on per-worker copies of the model,
	// then all updates are written back. Workers <= 1 keeps the sequential
	// rule where each update is visible to the next gradient.
	Workers int
}

// NewTrainer returns a sequential trainer with learning rate 1e-3 and
// step 1e-4.
func NewTrainer() *Trainer {
	return &Trainer{
		Optimizer: SGD{LearningRate: DefaultLearningRate},
		Estimator: diff.Estimator{Eps: diff.DefaultEps},
	}
}

// DefaultWorkers returns the number of physical cores, or the logical CPU
// count when cpuid cannot tell.
func DefaultWorkers() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Step performs exactly one gradient-descent step over every parameter of m
// using the first n samples of ds. It does not check for convergence or
// guard against NaN.
func (t *Trainer) Step(m neuron.Model, l loss.Loss, ds *data.Dataset, n int) {
	if t.Workers > 1 {
		t.stepParallel(m, l, ds, n)
		return
	}

	for _, p := range m.Params() {
		grad := t.Estimator.Gradient(m, l, ds, p, n)
		m.SetParam(p, t.Optimizer.Update(m.Param(p), grad))
	}
}

// stepParallel measures all gradients concurrently. Each worker owns a
// clone of m, so the estimator's perturbations never touch the shared model.
func (t *Trainer) stepParallel(m neuron.Model, l loss.Loss, ds *data.Dataset, n int) {
	params := m.Params()
	if len(params) == 0 {
		return
	}
	grads := make([]float64, len(params))

	numWorkers := min(len(params), t.Workers)
	chunk := (len(params) + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < len(params); start += chunk {
		end := min(start+chunk, len(params))
		scratch := m.CloneModel()

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				grads[i] = t.Estimator.Gradient(scratch, l, ds, params[i], n)
			}
		}(start, end)
	}
	wg.Wait()

	values := make([]float64, len(params))
	for i, p := range params {
		values[i] = m.Param(p)
	}
	t.Optimizer.StepInPlace(values, grads)
	for i, p := range params {
		m.SetParam(p, values[i])
	}
}

// Train performs one sequential step with the default learning rate and
// step size.
func Train(m neuron.Model, l loss.Loss, ds *data.Dataset, n int) {
	NewTrainer().Step(m, l, ds, n)
}
