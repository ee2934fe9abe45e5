package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/synapses/internal/nn"
)

// Decode parses canonical JSON into a network.
//
// Syntax errors, unknown fields and trailing data are reported as
// ErrMalformedNetwork; shape problems as *ValidationError.
func Decode(data []byte) (*nn.Network, error) {
	return Read(bytes.NewReader(data))
}

// Read parses a single canonical JSON document from r.
func Read(r io.Reader) (*nn.Network, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var c Canonical
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNetwork, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after network", ErrMalformedNetwork)
	}

	return FromCanonical(c)
}
