package serialization

import (
	"fmt"

	"github.com/born-ml/synapses/internal/nn"
)

// Validation error types.
const (
	typeEmptyNetwork      = "empty_network"
	typeEmptyLayer        = "empty_layer"
	typeWeightCount       = "weight_count"
	typeLayerChain        = "layer_chain"
	typeUnknownActivation = "unknown_activation"
)

// ValidateCanonical checks the structural invariants of a canonical tree:
//   - at least one layer, every layer with at least one neuron
//   - every neuron has a known activation tag
//   - every neuron has at least two weights (bias plus one input)
//   - neurons of a layer share their weight count
//   - the neuron count of layer i equals the input width of layer i+1
func ValidateCanonical(c Canonical) error {
	if len(c) == 0 {
		return &ValidationError{Type: typeEmptyNetwork, Layer: -1, Neuron: -1, Details: "network has no layers"}
	}

	for i, layer := range c {
		if len(layer) == 0 {
			return &ValidationError{Type: typeEmptyLayer, Layer: i, Neuron: -1, Details: "layer has no neurons"}
		}

		width := len(layer[0].Weights)
		for j, record := range layer {
			if _, err := nn.ParseActivation(record.ActivationF); err != nil {
				return &ValidationError{
					Type:    typeUnknownActivation,
					Layer:   i,
					Neuron:  j,
					Details: fmt.Sprintf("activationF %q is not supported", record.ActivationF),
				}
			}
			if len(record.Weights) < 2 {
				return &ValidationError{
					Type:    typeWeightCount,
					Layer:   i,
					Neuron:  j,
					Details: fmt.Sprintf("got %d weights, need at least 2", len(record.Weights)),
				}
			}
			if len(record.Weights) != width {
				return &ValidationError{
					Type:    typeWeightCount,
					Layer:   i,
					Neuron:  j,
					Details: fmt.Sprintf("got %d weights, neuron 0 has %d", len(record.Weights), width),
				}
			}
		}

		if i > 0 && len(c[i-1]) != width-1 {
			return &ValidationError{
				Type:    typeLayerChain,
				Layer:   i,
				Neuron:  -1,
				Details: fmt.Sprintf("expects %d inputs but layer %d has %d neurons", width-1, i-1, len(c[i-1])),
			}
		}
	}

	return nil
}
