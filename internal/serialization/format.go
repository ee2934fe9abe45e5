package serialization

import (
	"github.com/born-ml/synapses/internal/nn"
)

// NeuronRecord is the canonical form of one neuron.
type NeuronRecord struct {
	ActivationF string    `json:"activationF"` // Activation tag
	Weights     []float64 `json:"weights"`     // Bias followed by input weights
}

// LayerRecord is the canonical form of one layer.
type LayerRecord []NeuronRecord

// Canonical is the canonical value tree of a network: layers in order, each
// holding its neurons in order.
type Canonical []LayerRecord

// ToCanonical converts a network into its canonical value tree.
func ToCanonical(net *nn.Network) Canonical {
	layers := net.Layers()
	out := make(Canonical, len(layers))
	for i, layer := range layers {
		records := make(LayerRecord, len(layer))
		for j, neuron := range layer {
			records[j] = NeuronRecord{
				ActivationF: neuron.Activation.String(),
				Weights:     neuron.Weights,
			}
		}
		out[i] = records
	}
	return out
}

// FromCanonical rebuilds a network from its canonical value tree.
//
// The tree is validated first; failures are reported as *ValidationError.
func FromCanonical(c Canonical) (*nn.Network, error) {
	if err := ValidateCanonical(c); err != nil {
		return nil, err
	}

	layers := make([]nn.Layer, len(c))
	for i, records := range c {
		layer := make(nn.Layer, len(records))
		for j, record := range records {
			act, err := nn.ParseActivation(record.ActivationF)
			if err != nil {
				return nil, err
			}
			layer[j] = nn.Neuron{Activation: act, Weights: record.Weights}
		}
		layers[i] = layer
	}
	return nn.FromLayers(layers)
}
