// Package opt provides the gradient-descent trainer.
package opt

// DefaultLearningRate is the step size used by NewTrainer.
const DefaultLearningRate = 1e-3

// SGD (Stochastic Gradient Descent) update rule.
type SGD struct {
	LearningRate float64
}

// Update returns param - lr * grad
func (s SGD) Update(param, grad float64) float64 {
	return param - s.LearningRate*grad
}

// StepInPlace updates params in-place: params = params - lr * gradients
func (s SGD) StepInPlace(params, gradients []float64) {
	for i := range params {
		params[i] = s.Update(params[i], gradients[i])
	}
}
