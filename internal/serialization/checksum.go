package serialization

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/born-ml/synapses/internal/nn"
)

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Fingerprint returns the hex SHA-256 of the compact canonical JSON of net.
// Two networks have the same fingerprint exactly when their canonical forms match.
func Fingerprint(net *nn.Network) (string, error) {
	data, err := Encode(net)
	if err != nil {
		return "", err
	}
	sum := ComputeChecksum(data)
	return hex.EncodeToString(sum[:]), nil
}
