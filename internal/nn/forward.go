package nn

import (
	"fmt"

	"github.com/born-ml/synapses/internal/parallel"
)

// trace records the intermediate values of one forward pass.
type trace struct {
	inputs   [][]float64 // inputs[i] is the vector fed to layer i
	weighted [][]float64 // pre-activation sums, per layer and neuron
	outputs  [][]float64 // activated values, per layer and neuron
}

// output returns the activated values of the last layer.
func (t trace) output() []float64 {
	return t.outputs[len(t.outputs)-1]
}

// Predict computes the network output for input.
//
// For every layer in order, each neuron computes bias + Σ w_k·x_k and applies
// its activation; the activated vector is the input of the next layer.
// It fails with ErrDimensionMismatch when len(input) != InputSize().
func (n *Network) Predict(input []float64) ([]float64, error) {
	return n.PredictParallel(input, parallel.Sequential())
}

// PredictParallel is Predict with the neurons of each layer evaluated
// concurrently according to cfg. Each layer completes before the next one
// starts, and every neuron sums its inputs in the same order as Predict, so
// the result is identical.
func (n *Network) PredictParallel(input []float64, cfg parallel.Config) ([]float64, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	return n.forward(input, cfg).output(), nil
}

func (n *Network) forward(input []float64, cfg parallel.Config) trace {
	t := trace{
		inputs:   make([][]float64, len(n.layers)),
		weighted: make([][]float64, len(n.layers)),
		outputs:  make([][]float64, len(n.layers)),
	}

	current := input
	for i, layer := range n.layers {
		weighted := make([]float64, len(layer))
		outputs := make([]float64, len(layer))
		parallel.For(len(layer), func(j int) {
			neuron := layer[j]
			weighted[j] = neuron.weighted(current)
			outputs[j] = neuron.Activation.Apply(weighted[j])
		}, cfg)

		t.inputs[i] = current
		t.weighted[i] = weighted
		t.outputs[i] = outputs
		current = outputs
	}
	return t
}

func (n *Network) checkInput(input []float64) error {
	if len(input) != n.InputSize() {
		return fmt.Errorf("%w: input has %d values, network expects %d",
			ErrDimensionMismatch, len(input), n.InputSize())
	}
	return nil
}

func (n *Network) checkExpected(expected []float64) error {
	if len(expected) != n.OutputSize() {
		return fmt.Errorf("%w: expected output has %d values, network produces %d",
			ErrDimensionMismatch, len(expected), n.OutputSize())
	}
	return nil
}
