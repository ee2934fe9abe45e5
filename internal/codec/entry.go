package codec

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Entry is the per-attribute part of a codec: Continuous or Discrete.
type Entry interface {
	// Key returns the attribute name.
	Key() string
	// Width returns how many values the entry contributes to an encoded vector.
	Width() int

	encode(raw string, dst []float64) error
	decode(src []float64) string
	record() record
}

// Continuous min-max normalizes a numeric attribute into [0, 1] using the
// range observed while building the codec.
type Continuous struct {
	key      string
	min, max float64
}

// NewContinuous returns a continuous entry. min must not exceed max.
func NewContinuous(key string, min, max float64) (Continuous, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return Continuous{}, fmt.Errorf("%w: %q has min %v > max %v", ErrMalformedCodec, key, min, max)
	}
	return Continuous{key: key, min: min, max: max}, nil
}

// Key returns the attribute name.
func (c Continuous) Key() string { return c.key }

// Min returns the smallest observed value.
func (c Continuous) Min() float64 { return c.min }

// Max returns the largest observed value.
func (c Continuous) Max() float64 { return c.max }

// Width is always 1.
func (c Continuous) Width() int { return 1 }

// Normalize maps v into the observed range. A degenerate range (min == max)
// maps every value to 0.
func (c Continuous) Normalize(v float64) float64 {
	if c.max == c.min {
		return 0
	}
	return (v - c.min) / (c.max - c.min)
}

// Denormalize is the inverse of Normalize.
func (c Continuous) Denormalize(x float64) float64 {
	return c.min + x*(c.max-c.min)
}

func (c Continuous) encode(raw string, dst []float64) error {
	v, err := parseNumber(c.key, raw)
	if err != nil {
		return err
	}
	dst[0] = c.Normalize(v)
	return nil
}

func (c Continuous) decode(src []float64) string {
	return strconv.FormatFloat(c.Denormalize(src[0]), 'f', -1, 64)
}

// Discrete one-hot encodes a categorical attribute. Categories keep the order
// in which they were first seen; that order assigns the one-hot positions.
type Discrete struct {
	key    string
	values []string
	index  map[string]int
}

// NewDiscrete returns a discrete entry over values, which must be non-empty
// and free of duplicates. The order of values is kept as given.
func NewDiscrete(key string, values []string) (Discrete, error) {
	if len(values) == 0 {
		return Discrete{}, fmt.Errorf("%w: %q has no values", ErrMalformedCodec, key)
	}
	d := Discrete{key: key, values: slices.Clone(values), index: make(map[string]int, len(values))}
	for i, v := range values {
		if _, dup := d.index[v]; dup {
			return Discrete{}, fmt.Errorf("%w: %q lists %q twice", ErrMalformedCodec, key, v)
		}
		d.index[v] = i
	}
	return d, nil
}

// Key returns the attribute name.
func (d Discrete) Key() string { return d.key }

// Values returns the categories in one-hot order.
func (d Discrete) Values() []string { return slices.Clone(d.values) }

// Index returns the one-hot position of value.
func (d Discrete) Index(value string) (int, bool) {
	i, ok := d.index[value]
	return i, ok
}

// Width is the number of categories.
func (d Discrete) Width() int { return len(d.values) }

func (d Discrete) encode(raw string, dst []float64) error {
	i, ok := d.index[raw]
	if !ok {
		return fmt.Errorf("%w: %q for attribute %q", ErrUnknownCategory, raw, d.key)
	}
	clear(dst)
	dst[i] = 1
	return nil
}

// decode picks the category with the highest score; ties go to the lowest index.
func (d Discrete) decode(src []float64) string {
	return d.values[floats.MaxIdx(src)]
}

func parseNumber(key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q for attribute %q", ErrParse, raw, key)
	}
	return v, nil
}
