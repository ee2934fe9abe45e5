// Package nn implements the feed-forward network model and its propagation
// engine.
//
// A Network is an ordered list of fully connected layers. Every operation
// treats a Network as an immutable value: Predict and Errors only read it, and
// Fit returns a new Network with updated weights, leaving the receiver intact.
// A Network may therefore be shared freely between goroutines.
//
// Parallel variants (PredictParallel, FitParallel, Errors with inParallel set)
// evaluate the neurons of one layer concurrently and wait for the whole layer
// before moving to the next one.
package nn

import (
	"fmt"
	"slices"
)

// Network is a multi-layer feed-forward neural network.
type Network struct {
	layers []Layer
}

// FromLayers builds a network from explicit layers.
//
// The layers are deep-copied. FromLayers fails with ErrInvalidShape when the
// network is empty, a layer is empty, neurons in a layer disagree on their
// weight count, or the neuron count of layer i differs from the input width of
// layer i+1. It fails with ErrUnknownActivation for an activation outside the
// supported set.
func FromLayers(layers []Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: network has no layers", ErrInvalidShape)
	}
	for i, layer := range layers {
		if err := layer.validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if i > 0 && layers[i-1].Size() != layer.InputWidth() {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs but layer %d has %d neurons",
				ErrInvalidShape, i, layer.InputWidth(), i-1, layers[i-1].Size())
		}
	}

	out := make([]Layer, len(layers))
	for i, layer := range layers {
		out[i] = layer.clone()
	}
	return &Network{layers: out}, nil
}

// InputSize returns the width of the input vector.
func (n *Network) InputSize() int {
	return n.layers[0].InputWidth()
}

// OutputSize returns the width of the output vector.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Size()
}

// NumLayers returns the number of neuron layers (the input layer is not counted).
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// LayerSizes returns the sizes the network would be built from:
// the input width followed by the neuron count of every layer.
func (n *Network) LayerSizes() []int {
	sizes := make([]int, 0, len(n.layers)+1)
	sizes = append(sizes, n.InputSize())
	for _, layer := range n.layers {
		sizes = append(sizes, layer.Size())
	}
	return sizes
}

// Layers returns a deep copy of the network's layers.
func (n *Network) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	for i, layer := range n.layers {
		out[i] = layer.clone()
	}
	return out
}

// Layer returns a deep copy of layer i.
func (n *Network) Layer(i int) Layer {
	return n.layers[i].clone()
}

// Equal reports whether both networks have the same shape, activations and
// bit-identical weights.
func (n *Network) Equal(other *Network) bool {
	if n == nil || other == nil {
		return n == other
	}
	if len(n.layers) != len(other.layers) {
		return false
	}
	for i, layer := range n.layers {
		if len(layer) != len(other.layers[i]) {
			return false
		}
		for j, neuron := range layer {
			o := other.layers[i][j]
			if neuron.Activation != o.Activation || !slices.Equal(neuron.Weights, o.Weights) {
				return false
			}
		}
	}
	return true
}
