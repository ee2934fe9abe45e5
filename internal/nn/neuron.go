package nn

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Neuron is a single unit of a layer.
//
// Weights[0] is the bias weight (its input is the constant 1), and
// Weights[1:] holds one weight per input of the owning layer, so
// len(Weights) == inputWidth+1.
type Neuron struct {
	Activation Activation
	Weights    []float64
}

// InputWidth returns the number of inputs the neuron consumes.
func (n Neuron) InputWidth() int {
	return len(n.Weights) - 1
}

// Bias returns the bias weight.
func (n Neuron) Bias() float64 {
	return n.Weights[0]
}

// weighted returns bias + Σ w_k·x_k. The caller guarantees len(input) == InputWidth().
func (n Neuron) weighted(input []float64) float64 {
	return n.Weights[0] + floats.Dot(n.Weights[1:], input)
}

func (n Neuron) clone() Neuron {
	return Neuron{Activation: n.Activation, Weights: slices.Clone(n.Weights)}
}
