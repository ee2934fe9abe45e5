// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/synapses/internal/nn"
	"github.com/born-ml/synapses/internal/optim"
	"github.com/born-ml/synapses/internal/parallel"
	"github.com/born-ml/synapses/internal/serialization"
	"github.com/born-ml/synapses/internal/svg"
)

// Activations

// Fun is the activation function of a neuron.
type Fun = nn.Activation

// Supported activation functions.
const (
	Identity  = nn.Identity
	Sigmoid   = nn.Sigmoid
	Tanh      = nn.Tanh
	LeakyReLU = nn.LeakyReLU
)

// ParseFun returns the activation with the given serialized name
// ("identity", "sigmoid", "tanh" or "leakyReLU").
func ParseFun(name string) (Fun, error) {
	return nn.ParseActivation(name)
}

// Building blocks

// Network is the immutable network representation wrapped by Net.
type Network = nn.Network

// Layer is an ordered list of neurons.
type Layer = nn.Layer

// Neuron holds an activation and its weights, bias first.
type Neuron = nn.Neuron

// ActivationFunc picks the activation for a layer of neurons.
type ActivationFunc = nn.ActivationFunc

// WeightInitFunc draws one initial weight for a layer of neurons.
type WeightInitFunc = nn.WeightInitFunc

// Errors

// Errors returned by the constructors and by Net methods.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrUnknownActivation = nn.ErrUnknownActivation
	ErrInvalidShape      = nn.ErrInvalidShape
	ErrLearningRate      = nn.ErrLearningRate
	ErrMalformedNetwork  = serialization.ErrMalformedNetwork
)

// Net is an immutable feed-forward neural network.
type Net struct {
	net *nn.Network
}

// New creates a network with sigmoid activations and weights drawn
// uniformly from (-1, 1]. layerSizes lists the input width followed by the
// size of every layer of neurons.
func New(layerSizes []int) (*Net, error) {
	return wrap(nn.NewRandom(layerSizes))
}

// NewSeeded is like New but draws weights from a source seeded with seed.
// Equal seeds give equal networks.
func NewSeeded(layerSizes []int, seed int64) (*Net, error) {
	return wrap(nn.NewSeeded(layerSizes, seed))
}

// NewCustom creates a network whose activations and initial weights come from
// the given functions, called with the index of the layer of neurons.
func NewCustom(layerSizes []int, activation ActivationFunc, weightInit WeightInitFunc) (*Net, error) {
	return wrap(nn.NewCustom(layerSizes, activation, weightInit))
}

// FromLayers creates a network from explicit layers.
func FromLayers(layers []Layer) (*Net, error) {
	return wrap(nn.FromLayers(layers))
}

// FromJSON parses the canonical JSON form produced by Net.JSON.
func FromJSON(data []byte) (*Net, error) {
	return wrap(serialization.Decode(data))
}

// FromNetwork wraps an existing network.
func FromNetwork(network *Network) *Net {
	return &Net{net: network}
}

func wrap(network *nn.Network, err error) (*Net, error) {
	if err != nil {
		return nil, err
	}
	return &Net{net: network}, nil
}

// Network returns the underlying network.
func (n *Net) Network() *Network {
	return n.net
}

// InputSize returns the number of values Predict expects.
func (n *Net) InputSize() int {
	return n.net.InputSize()
}

// OutputSize returns the number of values Predict returns.
func (n *Net) OutputSize() int {
	return n.net.OutputSize()
}

// LayerSizes returns the input width followed by the size of each layer.
func (n *Net) LayerSizes() []int {
	return n.net.LayerSizes()
}

// Layers returns a deep copy of the layers.
func (n *Net) Layers() []Layer {
	return n.net.Layers()
}

// Predict runs the network on input.
func (n *Net) Predict(input []float64) ([]float64, error) {
	return n.net.Predict(input)
}

// ParPredict is Predict with the neurons of each layer evaluated in parallel.
func (n *Net) ParPredict(input []float64) ([]float64, error) {
	return n.net.PredictParallel(input, parallel.DefaultConfig())
}

// Errors returns the gradient of the squared error with respect to each
// input value. The network is not changed.
func (n *Net) Errors(input, expected []float64, inParallel bool) ([]float64, error) {
	return n.net.Errors(input, expected, inParallel)
}

// Fit performs one gradient descent step on a single observation and returns
// the updated network. The receiver is left untouched.
func (n *Net) Fit(learningRate float64, input, expected []float64) (*Net, error) {
	return wrap(n.net.Fit(learningRate, input, expected))
}

// FitPar is Fit with the neurons of each layer processed in parallel.
func (n *Net) FitPar(learningRate float64, input, expected []float64) (*Net, error) {
	return wrap(n.net.FitParallel(learningRate, input, expected, parallel.DefaultConfig()))
}

// FitWith performs one training step using opt as the weight update rule.
func (n *Net) FitWith(opt optim.Optimizer, input, expected []float64, inParallel bool) (*Net, error) {
	cfg := parallel.Sequential()
	if inParallel {
		cfg = parallel.DefaultConfig()
	}
	return wrap(n.net.FitWith(opt, input, expected, cfg))
}

// JSON returns the indented canonical JSON form.
func (n *Net) JSON() ([]byte, error) {
	return serialization.EncodeIndent(n.net)
}

// MarshalJSON implements json.Marshaler with the compact canonical form.
func (n *Net) MarshalJSON() ([]byte, error) {
	return serialization.Encode(n.net)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Net) UnmarshalJSON(data []byte) error {
	network, err := serialization.Decode(data)
	if err != nil {
		return err
	}
	n.net = network
	return nil
}

// SVG renders the network as a standalone SVG document.
func (n *Net) SVG() string {
	return svg.Render(n.net)
}

// Fingerprint returns the hex SHA-256 of the canonical JSON form.
func (n *Net) Fingerprint() (string, error) {
	return serialization.Fingerprint(n.net)
}

// Equal reports whether both networks have the same activations and weights.
func (n *Net) Equal(other *Net) bool {
	if other == nil {
		return false
	}
	return n.net.Equal(other.net)
}
