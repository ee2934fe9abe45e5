package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Serialized case names.
const (
	CaseContinuous = "SerializableContinuous"
	CaseDiscrete   = "SerializableDiscrete"
)

// record is the tagged JSON form of one entry:
//
//	{"Case":"SerializableContinuous","Fields":[{"key":"x","min":0,"max":1}]}
//	{"Case":"SerializableDiscrete","Fields":[{"key":"y","values":["a","b"]}]}
type record struct {
	Case   string            `json:"Case"`
	Fields []json.RawMessage `json:"Fields"`
}

type continuousFields struct {
	Key string   `json:"key"`
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type discreteFields struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

func newRecord(name string, fields any) record {
	raw, err := json.Marshal(fields)
	if err != nil {
		// fields are plain structs of strings and finite floats.
		panic(fmt.Sprintf("codec: marshal %s: %v", name, err))
	}
	return record{Case: name, Fields: []json.RawMessage{raw}}
}

func (c Continuous) record() record {
	return newRecord(CaseContinuous, continuousFields{Key: c.key, Min: &c.min, Max: &c.max})
}

func (d Discrete) record() record {
	return newRecord(CaseDiscrete, discreteFields{Key: d.key, Values: d.values})
}

// MarshalJSON implements json.Marshaler.
func (c *Codec) MarshalJSON() ([]byte, error) {
	records := make([]record, len(c.entries))
	for i, e := range c.entries {
		records[i] = e.record()
	}
	return json.Marshal(records)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Codec) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// Parse rebuilds a codec from its JSON form. Entry order and category order
// are kept exactly. Structural problems fail with ErrMalformedCodec.
func Parse(data []byte) (*Codec, error) {
	var records []record
	if err := strictDecode(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCodec, err)
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		e, err := r.entry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i] = e
	}
	return New(entries...)
}

func (r record) entry() (Entry, error) {
	if len(r.Fields) != 1 {
		return nil, fmt.Errorf("%w: %s needs exactly one Fields element, got %d",
			ErrMalformedCodec, r.Case, len(r.Fields))
	}

	switch r.Case {
	case CaseContinuous:
		var f continuousFields
		if err := strictDecode(r.Fields[0], &f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCodec, err)
		}
		if f.Min == nil || f.Max == nil {
			return nil, fmt.Errorf("%w: %q needs min and max", ErrMalformedCodec, f.Key)
		}
		return NewContinuous(f.Key, *f.Min, *f.Max)
	case CaseDiscrete:
		var f discreteFields
		if err := strictDecode(r.Fields[0], &f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCodec, err)
		}
		return NewDiscrete(f.Key, f.Values)
	default:
		return nil, fmt.Errorf("%w: unknown case %q", ErrMalformedCodec, r.Case)
	}
}

func strictDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after value")
	}
	return nil
}

// JSON returns the tagged JSON form of the codec. It is the inverse of Parse.
func (c *Codec) JSON() ([]byte, error) {
	return c.MarshalJSON()
}
