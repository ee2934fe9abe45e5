// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package codec converts tabular data points to numeric vectors a network
// can consume, and decodes network outputs back to data points.
//
// Continuous attributes are min-max normalized to [0, 1]; discrete attributes
// are one-hot encoded in first-seen category order.
//
//	c, err := codec.Build(
//	    []codec.Attribute{{Name: "x"}, {Name: "label", Discrete: true}},
//	    slices.Values(points),
//	)
//	vector, err := c.Encode(map[string]string{"x": "4.2", "label": "b"})
//	data, err := c.JSON()
//	same, err := codec.FromJSON(data)
package codec

import (
	"iter"

	"github.com/born-ml/synapses/internal/codec"
)

// Codec translates data points to vectors and back.
type Codec = codec.Codec

// Attribute names a data point field and tells whether it is discrete.
type Attribute = codec.Attribute

// Entry is the per-attribute part of a codec.
type Entry = codec.Entry

// Continuous is a min-max normalized attribute.
type Continuous = codec.Continuous

// Discrete is a one-hot encoded attribute.
type Discrete = codec.Discrete

// Errors returned by codec operations.
var (
	ErrParse             = codec.ErrParse
	ErrUnknownCategory   = codec.ErrUnknownCategory
	ErrDimensionMismatch = codec.ErrDimensionMismatch
	ErrMalformedCodec    = codec.ErrMalformedCodec
	ErrEmptyInput        = codec.ErrEmptyInput
	ErrMissingAttribute  = codec.ErrMissingAttribute
	ErrInvalidAttributes = codec.ErrInvalidAttributes
)

// Build collects attribute statistics from points in a single pass.
func Build(attrs []Attribute, points iter.Seq[map[string]string]) (*Codec, error) {
	return codec.Build(attrs, points)
}

// New assembles a codec from explicit entries.
func New(entries ...Entry) (*Codec, error) {
	return codec.New(entries...)
}

// NewContinuous creates a continuous entry for values in [min, max].
func NewContinuous(key string, min, max float64) (Continuous, error) {
	return codec.NewContinuous(key, min, max)
}

// NewDiscrete creates a discrete entry with the given category order.
func NewDiscrete(key string, values []string) (Discrete, error) {
	return codec.NewDiscrete(key, values)
}

// FromJSON parses the form produced by Codec.JSON.
func FromJSON(data []byte) (*Codec, error) {
	return codec.Parse(data)
}
