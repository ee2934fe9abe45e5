package serialization

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/born-ml/synapses/internal/nn"
)

// Encode returns the compact canonical JSON of net.
func Encode(net *nn.Network) ([]byte, error) {
	data, err := json.Marshal(ToCanonical(net))
	if err != nil {
		return nil, fmt.Errorf("failed to encode network: %w", err)
	}
	return data, nil
}

// EncodeIndent returns the canonical JSON of net indented by two spaces.
func EncodeIndent(net *nn.Network) ([]byte, error) {
	data, err := json.MarshalIndent(ToCanonical(net), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode network: %w", err)
	}
	return data, nil
}

// Write writes the indented canonical JSON of net to w, followed by a newline.
func Write(w io.Writer, net *nn.Network) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToCanonical(net)); err != nil {
		return fmt.Errorf("failed to write network: %w", err)
	}
	return nil
}
