package nn

import (
	"fmt"
	"math/rand"
)

// ActivationFunc selects the activation of every neuron in a layer.
// The argument is the index of the neuron layer (0 is the first layer after the input).
type ActivationFunc func(layer int) Activation

// WeightInitFunc draws one initial weight for a synapse of the given neuron layer.
type WeightInitFunc func(layer int) float64

// NewRandom creates a network with sigmoid neurons and weights drawn
// uniformly from (-1, 1].
//
// Parameters:
//   - layerSizes: input width followed by the neuron count of every layer.
//     At least two entries are required, all positive.
//
// Example:
//
//	net, err := nn.NewRandom([]int{2, 3, 1}) // 2 inputs, 3 hidden, 1 output
func NewRandom(layerSizes []int) (*Network, error) {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return NewCustom(layerSizes, sigmoidEverywhere, func(int) float64 {
		return 1.0 - 2.0*rand.Float64()
	})
}

// NewSeeded creates a network like NewRandom, but draws weights from a
// pseudorandom source initialized with seed. The same sizes and seed always
// produce the same network.
func NewSeeded(layerSizes []int, seed int64) (*Network, error) {
	//nolint:gosec // Deterministic source for reproducible networks
	rng := rand.New(rand.NewSource(seed))
	return NewCustom(layerSizes, sigmoidEverywhere, func(int) float64 {
		return 1.0 - 2.0*rng.Float64()
	})
}

// NewCustom creates a network whose activations and initial weights are
// chosen per layer.
//
// Weights are drawn in a fixed order: layer by layer, neuron by neuron, bias
// first. A deterministic weightInit therefore yields a deterministic network.
//
// Example:
//
//	net, err := nn.NewCustom([]int{4, 6, 5, 3},
//	    func(layer int) nn.Activation {
//	        if layer == 2 {
//	            return nn.Tanh
//	        }
//	        return nn.Sigmoid
//	    },
//	    func(int) float64 { return 1.0 - 2.0*rand.Float64() },
//	)
func NewCustom(layerSizes []int, activation ActivationFunc, weightInit WeightInitFunc) (*Network, error) {
	if err := validateSizes(layerSizes); err != nil {
		return nil, err
	}

	layers := make([]Layer, len(layerSizes)-1)
	for i := range layers {
		inputWidth, size := layerSizes[i], layerSizes[i+1]
		act := activation(i)
		if !act.Valid() {
			return nil, fmt.Errorf("layer %d: %w: %d", i, ErrUnknownActivation, uint8(act))
		}

		layer := make(Layer, size)
		for j := range layer {
			weights := make([]float64, inputWidth+1)
			for k := range weights {
				weights[k] = weightInit(i)
			}
			layer[j] = Neuron{Activation: act, Weights: weights}
		}
		layers[i] = layer
	}
	return &Network{layers: layers}, nil
}

func sigmoidEverywhere(int) Activation {
	return Sigmoid
}

func validateSizes(layerSizes []int) error {
	if len(layerSizes) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrInvalidShape, len(layerSizes))
	}
	for i, size := range layerSizes {
		if size < 1 {
			return fmt.Errorf("%w: layer size %d at index %d must be positive", ErrInvalidShape, size, i)
		}
	}
	return nil
}
