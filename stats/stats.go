// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats scores network predictions against expected outputs.
//
//	rmse, err := stats.RMSE(pairs)
//	accuracy, err := stats.Score(pairs)
//
// Both functions read the stream once.
package stats

import (
	"iter"

	"github.com/born-ml/synapses/internal/stats"
)

// Pair holds the expected and the predicted output of one observation.
type Pair = stats.Pair

// Errors returned by the metrics.
var (
	ErrEmptyInput        = stats.ErrEmptyInput
	ErrDimensionMismatch = stats.ErrDimensionMismatch
)

// RMSE returns the root-mean-square error per observation.
func RMSE(pairs iter.Seq[Pair]) (float64, error) {
	return stats.RMSE(pairs)
}

// Score returns the fraction of pairs whose expected and predicted argmax agree.
func Score(pairs iter.Seq[Pair]) (float64, error) {
	return stats.Score(pairs)
}
