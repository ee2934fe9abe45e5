// Package stats measures how far predicted outputs are from expected ones.
//
// Both metrics consume a stream of pairs exactly once and keep only running
// totals, so arbitrarily long streams can be evaluated.
package stats

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Common errors.
var (
	ErrEmptyInput        = errors.New("no output pairs")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Pair holds the expected and the predicted output of one observation.
type Pair struct {
	Expected  []float64
	Predicted []float64
}

// RMSE returns the root-mean-square error over pairs:
//
//	sqrt( Σ_pairs Σ_i (expected_i - predicted_i)² / number of pairs )
//
// The squared distance of every pair is averaged over the pairs, so the
// result is the root of the mean squared Euclidean error per observation.
func RMSE(pairs iter.Seq[Pair]) (float64, error) {
	var (
		sum   float64
		count int
		diff  []float64
	)
	for p := range pairs {
		if err := check(p, count); err != nil {
			return 0, err
		}
		diff = append(diff[:0], p.Expected...)
		floats.Sub(diff, p.Predicted)
		sum += floats.Dot(diff, diff)
		count++
	}
	if count == 0 {
		return 0, ErrEmptyInput
	}
	return math.Sqrt(sum / float64(count)), nil
}

// Score returns the classification accuracy over pairs: the fraction of pairs
// whose largest expected value and largest predicted value sit at the same
// index. Ties resolve to the lowest index.
func Score(pairs iter.Seq[Pair]) (float64, error) {
	var matches, count int
	for p := range pairs {
		if err := check(p, count); err != nil {
			return 0, err
		}
		if len(p.Expected) == 0 {
			return 0, fmt.Errorf("pair %d: %w: vectors are empty", count, ErrDimensionMismatch)
		}
		if floats.MaxIdx(p.Expected) == floats.MaxIdx(p.Predicted) {
			matches++
		}
		count++
	}
	if count == 0 {
		return 0, ErrEmptyInput
	}
	return float64(matches) / float64(count), nil
}

func check(p Pair, index int) error {
	if len(p.Expected) != len(p.Predicted) {
		return fmt.Errorf("pair %d: %w: expected has %d values, predicted has %d",
			index, ErrDimensionMismatch, len(p.Expected), len(p.Predicted))
	}
	return nil
}
