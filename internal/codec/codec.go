// Package codec converts tabular data points to fixed-width numeric vectors
// and back.
//
// A data point is a map from attribute name to raw string value. Continuous
// attributes are min-max normalized into [0, 1]; discrete attributes are
// one-hot encoded. The statistics behind both transforms are collected in a
// single pass over a stream of data points:
//
//	codec, err := codec.Build(
//	    []codec.Attribute{{Name: "petal_length"}, {Name: "species", Discrete: true}},
//	    slices.Values(dataset),
//	)
//	vector, err := codec.Encode(dataset[0])
//	point, err := codec.Decode(vector)
//
// A Codec is immutable and safe for concurrent use.
package codec

import (
	"fmt"
	"iter"
	"math"
)

// Attribute names a data point field and tells whether it is discrete.
type Attribute struct {
	Name     string
	Discrete bool
}

// Codec holds one entry per attribute, in attribute order.
type Codec struct {
	entries []Entry
	width   int
}

// New assembles a codec from explicit entries. Keys must be non-empty and unique.
func New(entries ...Entry) (*Codec, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: codec has no entries", ErrMalformedCodec)
	}
	keys := make(map[string]struct{}, len(entries))
	width := 0
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is nil", ErrMalformedCodec, i)
		}
		if e.Key() == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty key", ErrMalformedCodec, i)
		}
		if _, dup := keys[e.Key()]; dup {
			return nil, fmt.Errorf("%w: key %q appears twice", ErrMalformedCodec, e.Key())
		}
		keys[e.Key()] = struct{}{}
		width += e.Width()
	}
	return &Codec{entries: append([]Entry(nil), entries...), width: width}, nil
}

// accumulator gathers the statistics of one attribute while building.
type accumulator struct {
	attr     Attribute
	min, max float64
	values   []string
	seen     map[string]struct{}
}

func (a *accumulator) observe(raw string) error {
	if !a.attr.Discrete {
		v, err := parseNumber(a.attr.Name, raw)
		if err != nil {
			return err
		}
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
		return nil
	}
	if _, ok := a.seen[raw]; !ok {
		a.seen[raw] = struct{}{}
		a.values = append(a.values, raw)
	}
	return nil
}

func (a *accumulator) entry() (Entry, error) {
	if a.attr.Discrete {
		return NewDiscrete(a.attr.Name, a.values)
	}
	return NewContinuous(a.attr.Name, a.min, a.max)
}

// Build creates a codec by consuming points once.
//
// Continuous attributes record the smallest and largest parsed value;
// discrete attributes record their distinct values in first-seen order.
//
// Build fails with ErrInvalidAttributes for empty or duplicate attribute
// names, ErrMissingAttribute when a data point lacks an attribute, ErrParse
// when a continuous value is not a finite number, and ErrEmptyInput when
// points yields nothing.
func Build(attrs []Attribute, points iter.Seq[map[string]string]) (*Codec, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no attributes", ErrInvalidAttributes)
	}
	accs := make([]*accumulator, len(attrs))
	names := make(map[string]struct{}, len(attrs))
	for i, attr := range attrs {
		if attr.Name == "" {
			return nil, fmt.Errorf("%w: attribute %d has an empty name", ErrInvalidAttributes, i)
		}
		if _, dup := names[attr.Name]; dup {
			return nil, fmt.Errorf("%w: attribute %q appears twice", ErrInvalidAttributes, attr.Name)
		}
		names[attr.Name] = struct{}{}
		accs[i] = &accumulator{
			attr: attr,
			min:  math.Inf(1),
			max:  math.Inf(-1),
			seen: make(map[string]struct{}),
		}
	}

	count := 0
	for point := range points {
		for _, acc := range accs {
			raw, ok := point[acc.attr.Name]
			if !ok {
				return nil, fmt.Errorf("data point %d: %w: %q", count, ErrMissingAttribute, acc.attr.Name)
			}
			if err := acc.observe(raw); err != nil {
				return nil, fmt.Errorf("data point %d: %w", count, err)
			}
		}
		count++
	}
	if count == 0 {
		return nil, ErrEmptyInput
	}

	entries := make([]Entry, len(accs))
	for i, acc := range accs {
		e, err := acc.entry()
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return New(entries...)
}

// Width returns the length of every encoded vector.
func (c *Codec) Width() int {
	return c.width
}

// Entries returns the codec entries in attribute order.
func (c *Codec) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Attributes returns the attributes the codec was built from.
func (c *Codec) Attributes() []Attribute {
	attrs := make([]Attribute, len(c.entries))
	for i, e := range c.entries {
		_, discrete := e.(Discrete)
		attrs[i] = Attribute{Name: e.Key(), Discrete: discrete}
	}
	return attrs
}

// Encode turns a data point into a vector of Width() values.
//
// Keys of point that the codec does not know are ignored.
func (c *Codec) Encode(point map[string]string) ([]float64, error) {
	out := make([]float64, c.width)
	offset := 0
	for _, e := range c.entries {
		raw, ok := point[e.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingAttribute, e.Key())
		}
		if err := e.encode(raw, out[offset:offset+e.Width()]); err != nil {
			return nil, err
		}
		offset += e.Width()
	}
	return out, nil
}

// Decode turns a vector of Width() values back into a data point.
//
// Continuous values are denormalized; each one-hot slice maps to the category
// with the highest value, the first one on ties.
func (c *Codec) Decode(vector []float64) (map[string]string, error) {
	if len(vector) != c.width {
		return nil, fmt.Errorf("%w: vector has %d values, codec expects %d",
			ErrDimensionMismatch, len(vector), c.width)
	}
	point := make(map[string]string, len(c.entries))
	offset := 0
	for _, e := range c.entries {
		point[e.Key()] = e.decode(vector[offset : offset+e.Width()])
		offset += e.Width()
	}
	return point, nil
}
