package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/synapses/internal/optim"
	"github.com/born-ml/synapses/internal/parallel"
)

// Fit adjusts the network to a single observation with online gradient
// descent and returns the adjusted network. The receiver is not modified.
//
// Parameters:
//   - learningRate: step size, must be positive and finite
//   - input: feature values, len(input) == InputSize()
//   - expected: target values, len(expected) == OutputSize()
//
// Example:
//
//	net, err = net.Fit(0.1, []float64{0.2, 0.6}, []float64{0.9})
func (n *Network) Fit(learningRate float64, input, expected []float64) (*Network, error) {
	return n.FitParallel(learningRate, input, expected, parallel.Sequential())
}

// FitParallel is Fit with the neurons of each layer processed concurrently
// according to cfg. Every delta is computed from the pre-update forward pass,
// so neurons of one layer never observe each other's new weights.
func (n *Network) FitParallel(learningRate float64, input, expected []float64, cfg parallel.Config) (*Network, error) {
	if learningRate <= 0 || math.IsInf(learningRate, 0) || math.IsNaN(learningRate) {
		return nil, fmt.Errorf("%w: %v", ErrLearningRate, learningRate)
	}
	return n.FitWith(optim.NewSGD(optim.SGDConfig{LR: learningRate}), input, expected, cfg)
}

// FitWith runs one backpropagation step and applies opt to every neuron.
func (n *Network) FitWith(opt optim.Optimizer, input, expected []float64, cfg parallel.Config) (*Network, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	if err := n.checkExpected(expected); err != nil {
		return nil, err
	}

	t := n.forward(input, cfg)
	deltas, _ := n.backward(t, expected, cfg)

	layers := make([]Layer, len(n.layers))
	for i, layer := range n.layers {
		updated := make(Layer, len(layer))
		parallel.For(len(layer), func(j int) {
			neuron := layer[j]
			weights := make([]float64, len(neuron.Weights))
			opt.Update(weights, neuron.Weights, deltas[i][j], t.inputs[i])
			updated[j] = Neuron{Activation: neuron.Activation, Weights: weights}
		}, cfg)
		layers[i] = updated
	}
	return &Network{layers: layers}, nil
}

// Errors returns the error signal propagated back to every input feature for
// the observation (input, expected), without changing any weight.
//
// The vector is computed by the same backward pass Fit uses, continued one
// step past the first layer: errors_k = Σ_j delta_j · w_jk. When expected
// equals Predict(input) the result is the zero vector.
func (n *Network) Errors(input, expected []float64, inParallel bool) ([]float64, error) {
	cfg := parallel.Sequential()
	if inParallel {
		cfg = parallel.DefaultConfig()
	}
	return n.ErrorsWith(input, expected, cfg)
}

// ErrorsWith is Errors with an explicit parallel configuration.
func (n *Network) ErrorsWith(input, expected []float64, cfg parallel.Config) ([]float64, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	if err := n.checkExpected(expected); err != nil {
		return nil, err
	}

	t := n.forward(input, cfg)
	_, inputErrors := n.backward(t, expected, cfg)
	return inputErrors, nil
}

// backward walks the layers from last to first and returns the delta of
// every neuron together with the error vector reaching the network inputs.
//
// Output layer: delta_j = (y_j - expected_j) · f'(x_j).
// Other layers: delta_j = f'(x_j) · Σ_downstream delta_d · w_dj.
func (n *Network) backward(t trace, expected []float64, cfg parallel.Config) (deltas [][]float64, inputErrors []float64) {
	errs := make([]float64, len(expected))
	floats.SubTo(errs, t.output(), expected)

	deltas = make([][]float64, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		layer := n.layers[i]
		weighted, outputs := t.weighted[i], t.outputs[i]

		delta := make([]float64, len(layer))
		parallel.For(len(layer), func(j int) {
			delta[j] = errs[j] * layer[j].Activation.Derivative(weighted[j], outputs[j])
		}, cfg)
		deltas[i] = delta

		upstream := make([]float64, layer.InputWidth())
		parallel.For(len(upstream), func(k int) {
			sum := 0.0
			for j, neuron := range layer {
				sum += delta[j] * neuron.Weights[k+1]
			}
			upstream[k] = sum
		}, cfg)
		errs = upstream
	}
	return deltas, errs
}
