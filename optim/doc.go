// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides weight update rules for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: online Stochastic Gradient Descent
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/synapses/nn"
//	    "github.com/born-ml/synapses/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{4, 8, 3})
//	    sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//
//	    for epoch := range 10 {
//	        for _, obs := range dataset {
//	            net, _ = net.FitWith(sgd, obs.Input, obs.Expected, false)
//	        }
//	    }
//	}
//
// # Custom Update Rules
//
// An Optimizer receives the current weights of one neuron (bias first), the
// neuron's error signal and the input the neuron saw. It writes the new
// weights into dst and must not modify weights:
//
//	type halving struct{ optim.Optimizer }
//
//	func (h halving) Update(dst, weights []float64, delta float64, input []float64) {
//	    h.Optimizer.Update(dst, weights, delta/2, input)
//	}
package optim
