package nn

import "fmt"

// Layer is an ordered group of neurons that read the same input vector.
type Layer []Neuron

// InputWidth returns the width of the vector the layer consumes.
// An empty layer reports zero.
func (l Layer) InputWidth() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].InputWidth()
}

// Size returns the number of neurons, which is also the layer's output width.
func (l Layer) Size() int {
	return len(l)
}

// validate checks that the layer is non-empty, uses known activations, and
// that every neuron has the same positive input width.
func (l Layer) validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: layer has no neurons", ErrInvalidShape)
	}
	width := l.InputWidth()
	if width < 1 {
		return fmt.Errorf("%w: neuron 0 has %d weights, need at least 2", ErrInvalidShape, len(l[0].Weights))
	}
	for j, neuron := range l {
		if !neuron.Activation.Valid() {
			return fmt.Errorf("neuron %d: %w: %d", j, ErrUnknownActivation, uint8(neuron.Activation))
		}
		if neuron.InputWidth() != width {
			return fmt.Errorf("%w: neuron %d has %d weights, expected %d",
				ErrInvalidShape, j, len(neuron.Weights), width+1)
		}
	}
	return nil
}

func (l Layer) clone() Layer {
	out := make(Layer, len(l))
	for j, neuron := range l {
		out[j] = neuron.clone()
	}
	return out
}
