// Package optim implements the weight update rules used when fitting a
// network to a single observation.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: plain online gradient descent
//
// An update rule never mutates the weights it is given; it writes the updated
// weights into a destination slice so the caller can build a new network value.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	updated := make([]float64, len(weights))
//	sgd.Update(updated, weights, delta, input)
package optim

// Optimizer is the base interface for all update rules.
type Optimizer interface {
	// Update writes the updated weights of one neuron into dst.
	//
	// weights[0] is the bias weight, weights[1:] align with input, and delta
	// is the neuron's error signal for the current observation.
	// len(dst) must equal len(weights).
	Update(dst, weights []float64, delta float64, input []float64)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
