// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/synapses/internal/optim"
)

// Optimizer interface defines the common interface for all update rules.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD represents the online gradient descent update rule.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = optim.DefaultLR

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
