// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected feed-forward neural networks.
//
// # Overview
//
// A network is a sequence of layers. Every neuron of a layer reads the whole
// output of the previous layer (or the network input for the first layer),
// computes a bias plus a weighted sum, and applies its own activation
// function. Supported activations:
//   - Identity: f(x) = x
//   - Sigmoid:  f(x) = 1 / (1 + e^-x)
//   - Tanh:     f(x) = tanh(x)
//   - LeakyReLU: f(x) = x for x > 0, 0.01x otherwise
//
// # Basic Usage
//
//	import "github.com/born-ml/synapses/nn"
//
//	func main() {
//	    // 2 inputs, a hidden layer of 3 neurons, 1 output
//	    net, err := nn.New([]int{2, 3, 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    prediction, err := net.Predict([]float64{0.2, 0.6})
//
//	    // One stochastic gradient descent step returns a new network
//	    net, err = net.Fit(0.01, []float64{0.2, 0.6}, []float64{0.9})
//	}
//
// # Immutability
//
// A Net never changes after construction. Fit and FitPar return a fresh
// network with updated weights, so a Net can be shared between goroutines
// and older versions stay valid.
//
// # Custom Networks
//
// NewCustom chooses an activation and a weight initializer per layer. The
// layer index passed to both functions is 0 for the first layer of neurons:
//
//	net, err := nn.NewCustom([]int{4, 6, 3},
//	    func(layer int) nn.Fun {
//	        if layer == 0 {
//	            return nn.LeakyReLU
//	        }
//	        return nn.Sigmoid
//	    },
//	    func(int) float64 { return rand.NormFloat64() },
//	)
//
// # Parallel Execution
//
// ParPredict and FitPar evaluate the neurons of each layer concurrently.
// Results are identical to the sequential variants.
//
// # Serialization
//
// JSON returns the canonical form, FromJSON reads it back exactly:
//
//	[[{"activationF":"sigmoid","weights":[0.1,0.2,0.3]}, ...], ...]
//
// SVG draws the network topology with colors for activations and weight signs.
package nn
