package serialization

import (
	"errors"
	"fmt"

	"github.com/born-ml/synapses/internal/nn"
)

// Common errors.
var (
	ErrMalformedNetwork  = errors.New("malformed network")
	ErrUnknownActivation = nn.ErrUnknownActivation
)

// ValidationError provides detailed information about validation failures.
//
// It unwraps to ErrUnknownActivation for activation problems and to
// ErrMalformedNetwork for everything else.
type ValidationError struct {
	Type    string // Type of error (e.g., "weight_count", "layer_chain")
	Layer   int    // Layer index, -1 when not applicable
	Neuron  int    // Neuron index, -1 when not applicable
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Neuron >= 0:
		return fmt.Sprintf("%s: layer %d neuron %d: %s", e.Type, e.Layer, e.Neuron, e.Details)
	case e.Layer >= 0:
		return fmt.Sprintf("%s: layer %d: %s", e.Type, e.Layer, e.Details)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Details)
	}
}

// Unwrap returns the sentinel the error belongs to.
func (e *ValidationError) Unwrap() error {
	if e.Type == typeUnknownActivation {
		return ErrUnknownActivation
	}
	return ErrMalformedNetwork
}
