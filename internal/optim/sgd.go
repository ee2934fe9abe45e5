package optim

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultLR is used when SGDConfig.LR is left at zero.
const DefaultLR = 0.01

// SGD implements online Stochastic Gradient Descent.
//
// Update rule for one neuron:
//
//	w_0 = w_0 - lr * delta          (bias, constant input 1)
//	w_k = w_k - lr * delta * x_k    (k >= 1)
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD{lr: config.LR}
}

// Update applies the gradient descent step for a single neuron.
func (s *SGD) Update(dst, weights []float64, delta float64, input []float64) {
	step := -s.lr * delta
	dst[0] = weights[0] + step
	floats.AddScaledTo(dst[1:], weights[1:], step, input)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
